package entities

// Company is a locally stored employer. ServerID is nil until the record
// has been matched against the server's company list; once set it is the
// stable join key for reconciliation.
type Company struct {
	ID       int64 `gorm:"primaryKey"`
	ServerID *int  `gorm:"uniqueIndex"`
	Name     string
}

func NewCompany(serverID *int, name string) Company {
	return Company{ServerID: serverID, Name: name}
}

// Synced reports whether the company is known to the server.
func (c Company) Synced() bool {
	return c.ServerID != nil
}
