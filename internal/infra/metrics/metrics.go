package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики жизненного цикла заявок. Экспортируются через /metrics.
var (
	IntakesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbot_intakes_started_total",
		Help: "Сколько раз начат диалог заявки.",
	})

	IntakesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbot_intakes_completed_total",
		Help: "Сколько заявок завершено и разослано.",
	})

	ActiveIntakes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderbot_active_intakes",
		Help: "Количество незавершённых диалогов.",
	})

	ManagerDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderbot_manager_deliveries_total",
		Help: "Доставки заявок менеджерам по результату.",
	}, []string{"outcome"})

	AdminNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderbot_admin_notifications_total",
		Help: "Уведомления админам по результату.",
	}, []string{"outcome"})
)
