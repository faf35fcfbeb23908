package dtos

import (
	"fmt"
	"strconv"
)

// Rate is a site score. In JSON it may come as a number or as a quoted number.
type Rate int

func (r *Rate) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
		if raw == "" {
			*r = 0
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("rate %s no es un número", data)
	}
	*r = Rate(n)
	return nil
}

// CreateSiteRequest is the body of POST /sitios. Rate is required non-zero.
type CreateSiteRequest struct {
	Name   string `json:"name" form:"name" binding:"required"`
	Info   string `json:"info" form:"info" binding:"required"`
	Photo  string `json:"photo" form:"photo" binding:"required"`
	Rate   Rate   `json:"rate" form:"rate" binding:"required"`
	Coords string `json:"coords" form:"coords" binding:"required"`
}

// UploadSiteRequest carries the text fields of a multipart site upload.
// The photo comes from the file part.
type UploadSiteRequest struct {
	Name   string `form:"name" binding:"required"`
	Info   string `form:"info" binding:"required"`
	Rate   Rate   `form:"rate" binding:"required"`
	Coords string `form:"coords" binding:"required"`
}

// UpdateSiteRequest holds the fields PUT /sitios/:id may change.
// Empty or zero values mean "not supplied".
type UpdateSiteRequest struct {
	Name   string `json:"name" form:"name"`
	Info   string `json:"info" form:"info"`
	Rate   Rate   `json:"rate" form:"rate"`
	Coords string `json:"coords" form:"coords"`
}

// InfoResponse wraps listings as {"info": [...]}.
type InfoResponse struct {
	Info any `json:"info"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type AffectedRowsResponse struct {
	Status       string `json:"status"`
	AffectedRows int64  `json:"affected_rows"`
}

type ImportResponse struct {
	Status   string   `json:"status"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
