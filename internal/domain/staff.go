package domain

import "time"

type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
