package types

// Order statuses.
const (
	OrderCompleted  = "completed"
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCancelled  = "cancelled"
)

// orderStatusLabels maps each order status to the label shown in tables,
// searched by the orders view, and written in CSV exports.
var orderStatusLabels = map[string]string{
	OrderCompleted:  "Terminé",
	OrderPending:    "En attente",
	OrderProcessing: "En cours",
	OrderCancelled:  "Annulé",
}

// OrderStatuses lists the valid order statuses in display order.
var OrderStatuses = []string{OrderCompleted, OrderPending, OrderProcessing, OrderCancelled}

// OrderStatusLabel returns the human-readable label for an order status.
// Unknown statuses are returned unchanged.
func OrderStatusLabel(status string) string {
	if l, ok := orderStatusLabels[status]; ok {
		return l
	}
	return status
}

// ValidOrderStatus reports whether status is one of the order statuses.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatusLabels[status]
	return ok
}

// User statuses and plans.
const (
	UserActive  = "active"
	UserPending = "pending"

	PlanStarter  = "starter"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

var validUserStatuses = map[string]bool{
	UserActive:  true,
	UserPending: true,
}

var validPlans = map[string]bool{
	PlanStarter:  true,
	PlanPro:      true,
	PlanBusiness: true,
}

// UserStatusLabel returns the label for a user status. Anything other than
// active reads as pending, as the users table has always shown it.
func UserStatusLabel(status string) string {
	if status == UserActive {
		return "Actif"
	}
	return "En attente"
}

// ValidUserStatus reports whether status is a known user status.
func ValidUserStatus(status string) bool { return validUserStatuses[status] }

// ValidPlan reports whether plan is a known subscription plan.
func ValidPlan(plan string) bool { return validPlans[plan] }

// Notification types.
const (
	NotifyOrder  = "order"
	NotifyUser   = "user"
	NotifyAlert  = "alert"
	NotifyReview = "review"
	NotifyInfo   = "info"
)
