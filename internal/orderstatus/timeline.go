package orderstatus

import "github.com/fitrinurazis/batik-storefront/internal/domain"

type StageState string

const (
	StageComplete  StageState = "complete"
	StageCurrent   StageState = "current"
	StageUpcoming  StageState = "upcoming"
	StageInactive  StageState = "inactive"
	StageCancelled StageState = "cancelled"
)

type Stage struct {
	Status      domain.OrderStatus `json:"status"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	State       StageState         `json:"state"`
}

var stageLabels = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "Menunggu Pembayaran",
	domain.OrderStatusProcessing: "Diproses",
	domain.OrderStatusShipped:    "Dikirim",
	domain.OrderStatusDelivered:  "Diterima",
}

var stageDescriptions = map[domain.OrderStatus]map[StageState]string{
	domain.OrderStatusPending: {
		StageComplete: "Pesanan diterima dan pembayaran sudah dikonfirmasi",
		StageCurrent:  "Pesanan menunggu konfirmasi pembayaran",
		StageUpcoming: "Pesanan akan dikonfirmasi setelah pembayaran",
	},
	domain.OrderStatusProcessing: {
		StageComplete: "Pesanan selesai diproses",
		StageCurrent:  "Pesanan sedang disiapkan",
		StageUpcoming: "Pesanan akan diproses setelah dikonfirmasi",
	},
	domain.OrderStatusShipped: {
		StageComplete: "Pesanan sudah dikirim",
		StageCurrent:  "Pesanan dalam pengiriman",
		StageUpcoming: "Pesanan akan dikirim setelah diproses",
	},
	domain.OrderStatusDelivered: {
		StageComplete: "Pesanan sudah diterima pelanggan",
		StageCurrent:  "Pesanan sampai di tujuan",
		StageUpcoming: "Pesanan akan sampai setelah dikirim",
	},
}

// Timeline maps an order's status onto the fixed stage progression. Stages
// before the current status render complete, the current one current, later
// ones upcoming. A cancelled order renders every stage inactive with a
// terminal cancelled entry appended.
func Timeline(order *domain.Order) []Stage {
	if order.Status == domain.OrderStatusCancelled {
		stages := make([]Stage, 0, len(domain.OrderStages)+1)
		for _, status := range domain.OrderStages {
			stages = append(stages, Stage{
				Status: status,
				Label:  stageLabels[status],
				State:  StageInactive,
			})
		}
		stages = append(stages, Stage{
			Status:      domain.OrderStatusCancelled,
			Label:       "Dibatalkan",
			Description: "Pesanan dibatalkan",
			State:       StageCancelled,
		})
		return stages
	}

	current := order.Status.StageIndex()
	stages := make([]Stage, 0, len(domain.OrderStages))
	for i, status := range domain.OrderStages {
		state := StageUpcoming
		switch {
		case i < current:
			state = StageComplete
		case i == current:
			state = StageCurrent
		}

		stages = append(stages, Stage{
			Status:      status,
			Label:       stageLabels[status],
			Description: stageDescriptions[status][state],
			State:       state,
		})
	}
	return stages
}
