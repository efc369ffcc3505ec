package domain

// ContactType enumerates the roles a contact person can have.
type ContactType string

const (
	ContactTypeAdmin     ContactType = "Admin"
	ContactTypeTechnical ContactType = "Technical"
	ContactTypeBilling   ContactType = "Billing"
)

// Contact is a person attached to exactly one client, vendor or service.
type Contact struct {
	ID          int64
	Name        string
	Designation string
	Type        ContactType
	Phone1      string
	Phone2      *string
	Phone3      *string
	Email       *string
	Parent      ParentRef
}
