package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// District mirrors the Bangladesh geo dataset loaded into `district`.
type District struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID       string             `bson:"id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	BnName   string             `bson:"bn_name,omitempty" json:"bn_name,omitempty"`
	URL      string             `bson:"url,omitempty" json:"url,omitempty"`
}

// Upazila is a sub-district; DistrictID refers to District.ID.
type Upazila struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID         string             `bson:"id" json:"id"`
	DistrictID string             `bson:"district_id" json:"district_id"`
	Name       string             `bson:"name" json:"name"`
	BnName     string             `bson:"bn_name,omitempty" json:"bn_name,omitempty"`
	URL        string             `bson:"url,omitempty" json:"url,omitempty"`
}
