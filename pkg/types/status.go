package types

// Role is the explicit authenticated role carried in JWT claims and request
// context. There is no "maybe admin" state: a session is either an affiliate
// or an admin.
type Role string

const (
	RoleAffiliate Role = "affiliate"
	RoleAdmin     Role = "admin"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusPaid     WithdrawalStatus = "paid"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusAvailable CommissionStatus = "available"
	CommissionStatusWithdrawn CommissionStatus = "withdrawn"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

type GoalType string

const (
	GoalTypeValue     GoalType = "value"
	GoalTypeSales     GoalType = "sales"
	GoalTypeReferrals GoalType = "referrals"
)

// GoalStatus is derived at read time from the goal period and its progress;
// it is never stored.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusExpired   GoalStatus = "expired"
	GoalStatusPending   GoalStatus = "pending"
)

type TicketStatus string

const (
	TicketStatusOpen        TicketStatus = "open"
	TicketStatusInProgress  TicketStatus = "in_progress"
	TicketStatusWaitingUser TicketStatus = "waiting_user"
	TicketStatusResolved    TicketStatus = "resolved"
	TicketStatusClosed      TicketStatus = "closed"
)

func (s TicketStatus) Terminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid   SubscriptionStatus = "unpaid"
)

type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeCNPJ   PixKeyType = "cnpj"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypePhone  PixKeyType = "phone"
	PixKeyTypeRandom PixKeyType = "random"
)

type StripeEnvironment string

const (
	StripeEnvironmentLive StripeEnvironment = "live"
	StripeEnvironmentTest StripeEnvironment = "test"
)

// ReferenceKind identifies which of the sender's own records a support
// message points at.
type ReferenceKind string

const (
	ReferenceKindCommission   ReferenceKind = "commission"
	ReferenceKindReferral     ReferenceKind = "referral"
	ReferenceKindSubAffiliate ReferenceKind = "sub_affiliate"
)

// MessageReference is the structured form of a support-message reference.
// References are persisted as JSONB on the message row and rendered by the
// client, never string-encoded into the message body.
type MessageReference struct {
	Kind  ReferenceKind `json:"kind"`
	ID    string        `json:"id"`
	Label string        `json:"label,omitempty"`
}
