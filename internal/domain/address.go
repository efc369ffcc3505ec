package domain

// Address is a postal location attached to exactly one client, vendor or service.
type Address struct {
	ID        int64
	Flat      *string
	Floor     *string
	Holding   string
	Street    string
	Area      string
	Thana     string
	District  string
	ExtraInfo *string
	Parent    ParentRef
}
