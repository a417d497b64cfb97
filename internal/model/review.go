package model

import "time"

type Review struct {
	Id        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Product   string    `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}
