package events

// Event types published by the domain services. Subscribers register against
// these names.
const (
	TypeDemandeCreated           = "demande.created"
	TypeDemandeStatusChanged     = "demande.status_changed"
	TypeDemandeAssigned          = "demande.assigned"
	TypeReclamationCreated       = "reclamation.created"
	TypeReclamationStatusChanged = "reclamation.status_changed"
	TypeReclamationAssigned      = "reclamation.assigned"
	TypeUserRegistered           = "user.registered"
)
