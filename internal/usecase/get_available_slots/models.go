package get_available_slots

import (
	"time"

	"github.com/PKOOOO/cosmix-booking-service/internal/domain"
	"github.com/PKOOOO/cosmix-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ResourceID int64     // ID ресурса (салона)
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата для получения слотов (без времени)

	// ExcludePast убирает слоты, начало которых не строго в будущем.
	// Включается при расчёте доступности "на сегодня"; недельная сетка
	// запрашивается без этого флага.
	ExcludePast bool
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	ResourceID int64
	ServiceID  int64
	Slots      []Slot

	// IsClosed выставляется, когда день не даёт слотов в принципе
	// (ресурс закрыт или услуга не оказывается в этот день недели)
	IsClosed bool
	Reason   domain.ClosedReason
}

// Slot модель временного слота
type Slot struct {
	StartTime     types.TimeString // Время начала слота, например "10:00"
	StartDateTime time.Time        // Полная метка времени начала
}
