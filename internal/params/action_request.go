package params

type KycDecisionRequest struct {
	Status  string `json:"status" validate:"required,oneof=Approved Rejected"`
	Message string `json:"message,omitempty" validate:"max=500"`
}

type WalletAdjustRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Type   string  `json:"type" validate:"required,oneof=credit debit"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Remark string  `json:"remark,omitempty" validate:"max=500"`
	// Confirm must be true for the adjustment to execute; a false value
	// returns the computed preview instead.
	Confirm bool `json:"confirm"`
}

type NotificationRequest struct {
	Title   string `json:"title" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=1000"`
	Topic   string `json:"topic" validate:"required,oneof=all_users android_users ios_users kyc_pending"`
}
