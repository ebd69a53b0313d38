package domain

// ServiceStatus is the workflow stage of a purchase. The stages form a fixed order.
type ServiceStatus string

const (
	StatusAwaitingOrder     ServiceStatus = "esperando orden"
	StatusAwaitingApproval  ServiceStatus = "esperando aprobacion"
	StatusAwaitingBreakdown ServiceStatus = "esperando cuadro"
	StatusAwaitingOK        ServiceStatus = "esperando ok"
	StatusAwaitingShipment  ServiceStatus = "esperando envio"
	StatusPaid              ServiceStatus = "pagado"
)

var serviceStatuses = []ServiceStatus{
	StatusAwaitingOrder,
	StatusAwaitingApproval,
	StatusAwaitingBreakdown,
	StatusAwaitingOK,
	StatusAwaitingShipment,
	StatusPaid,
}

// ServiceStatuses returns the workflow stages in order.
func ServiceStatuses() []ServiceStatus {
	out := make([]ServiceStatus, len(serviceStatuses))
	copy(out, serviceStatuses)
	return out
}

// Ordinal returns the position of s in the workflow, or -1 when s is unknown.
func (s ServiceStatus) Ordinal() int {
	for i, st := range serviceStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is one of the known workflow stages.
func (s ServiceStatus) IsValid() bool {
	return s.Ordinal() >= 0
}

// AccountType is the kind of bank account a carrier is paid into.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Ahorros"
	AccountTypeChecking AccountType = "Corriente"
)

// IsValid reports whether t is a supported account type.
func (t AccountType) IsValid() bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}
