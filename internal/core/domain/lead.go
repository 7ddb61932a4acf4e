package domain

// CallbackLead - заявка на обратный звонок. Живет только на время
// отправки формы, после успешного сабмита нигде не сохраняется.
type CallbackLead struct {
	Name      string
	Phone     string
	Reason    string
	ProjectID string
	HouseID   string
	Notes     string
}

// CallbackReceipt - подтверждение приема заявки от backend.
type CallbackReceipt struct {
	ID      string
	Message string
}
