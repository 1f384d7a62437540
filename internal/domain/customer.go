package domain

// Customer represents a shop customer.
// Names are unique: vehicles are referenced by owner name + description,
// so two customers with the same name would be indistinguishable.
type Customer struct {
	ID   int64
	Name string
}

// Vehicle represents a customer's vehicle.
// The (owner, description) pair is unique for the same reason names are.
type Vehicle struct {
	ID          int64
	CustomerID  int64
	Description string
}
