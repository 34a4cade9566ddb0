package model

import (
	"encoding/json"
	"errors"
)

// ImageList is the ordered image sequence stored as JSON text in
// providers.images. OpeningHours maps weekday names to open/close times and is
// stored as JSON text in providers.opening_hours. Rows written by older
// clients may hold arbitrary bytes in either column, so reads always go
// through the tolerant Decode* constructors and never fail.

type ImageList []string

type DayHours struct {
	Open  *string `json:"open"`
	Close *string `json:"close"`
}

type OpeningHours map[string]DayHours

var (
	ErrNotImageList    = errors.New("images must be a JSON array")
	ErrNotOpeningHours = errors.New("openingHours must be a JSON object")
)

// DecodeImages decodes a stored images column. Malformed or non-array input
// yields an empty list, never an error.
func DecodeImages(raw []byte) ImageList {
	if len(raw) == 0 {
		return ImageList{}
	}
	var imgs ImageList
	if err := json.Unmarshal(raw, &imgs); err != nil || imgs == nil {
		return ImageList{}
	}
	return imgs
}

// DecodeOpeningHours decodes a stored opening_hours column. Malformed or
// non-object input yields an empty map, never an error.
func DecodeOpeningHours(raw []byte) OpeningHours {
	if len(raw) == 0 {
		return OpeningHours{}
	}
	var oh OpeningHours
	if err := json.Unmarshal(raw, &oh); err != nil || oh == nil {
		return OpeningHours{}
	}
	return oh
}

// ParseImages is the strict variant applied to caller-supplied existingImages.
func ParseImages(s string) (ImageList, error) {
	var imgs ImageList
	if err := json.Unmarshal([]byte(s), &imgs); err != nil {
		return nil, ErrNotImageList
	}
	if imgs == nil {
		imgs = ImageList{}
	}
	return imgs, nil
}

// ParseOpeningHours is the strict variant applied to caller-supplied
// openingHours. Arrays and scalars are rejected.
func ParseOpeningHours(s string) (OpeningHours, error) {
	var oh OpeningHours
	if err := json.Unmarshal([]byte(s), &oh); err != nil {
		return nil, ErrNotOpeningHours
	}
	if oh == nil {
		oh = OpeningHours{}
	}
	return oh, nil
}

func (l ImageList) Encode() []byte {
	if l == nil {
		l = ImageList{}
	}
	b, _ := json.Marshal(l)
	return b
}

func (h OpeningHours) Encode() []byte {
	if h == nil {
		h = OpeningHours{}
	}
	b, _ := json.Marshal(h)
	return b
}
