package model

import "time"

// Alias maps a short name to a full client identity.
type Alias struct {
	ObjectType   string    `json:"objectType"` // "Alias"
	Alias        string    `json:"alias"`
	Identity     string    `json:"identity"` // Full X.509 identity string
	RegisteredBy string    `json:"registeredBy"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CallerIdentity describes the invoker of the current transaction.
type CallerIdentity struct {
	Identity string `json:"identity"`
	MSPID    string `json:"mspId"`
	Alias    string `json:"alias,omitempty" metadata:",optional"`
}
