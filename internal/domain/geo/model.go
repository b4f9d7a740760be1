package geo

type Country struct {
	ID          int64
	Name        string
	ISOCode     string
	PhonePrefix string
}

// Address is a shipping address snapshot. Orders get their own copy,
// never a reference to the customer's home address.
type Address struct {
	ID        int64
	Line1     string
	Line2     string
	Zipcode   string
	City      string
	CountryID int64
}
