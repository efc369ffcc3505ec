package domain

// ServiceType categorizes services (e.g. Internet, Data Connectivity).
type ServiceType struct {
	ID          int64
	Name        string
	Description *string
}

// Service is a circuit delivered to a client at a service point via a pop.
type Service struct {
	ID            int64
	ClientID      int64
	Point         string
	ServiceTypeID int64
	Bandwidth     int64
	PopID         int64
	ExtraInfo     *string
}
