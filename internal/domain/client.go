package domain

// ClientType categorizes clients (e.g. Bank, Corporate, SME).
type ClientType struct {
	ID   int64
	Name string
}

// Client is a subscriber organization consuming one or more services.
type Client struct {
	ID           int64
	Name         string
	ClientTypeID int64
}
