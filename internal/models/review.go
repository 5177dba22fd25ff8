package models

import "time"

type Review struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	ContactName        *string    `json:"contact_name"`
	ContactPhone       *string    `json:"contact_phone"`
	ReviewText         *string    `json:"review_text"`
	SelectedDoctors    []Doctor   `gorm:"many2many:review_doctors"   json:"selected_doctors"`
	SelectedServices   []Service  `gorm:"many2many:review_services"  json:"selected_services"`
	SelectedAspects    []Aspect   `gorm:"many2many:review_aspects"   json:"selected_aspects"`
	SourceID           *uint      `json:"-"`
	SelectedSource     *Source    `gorm:"foreignKey:SourceID"        json:"selected_source"`
	RewardID           *uint      `json:"-"`
	SelectedReward     *Reward    `gorm:"foreignKey:RewardID"        json:"selected_reward"`
	PublishedPlatforms []Platform `gorm:"many2many:review_platforms" json:"published_platforms"`
	CreatedAt          time.Time  `json:"-"`
}

type Complaint struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ContactName     *string   `json:"contact_name"`
	ContactPhone    *string   `json:"contact_phone"`
	ComplaintText   *string   `json:"complaint_text"`
	SelectedReasons []Reason  `gorm:"many2many:complaint_reasons" json:"selected_reasons"`
	CreatedAt       time.Time `json:"-"`
}

type ReviewBody struct {
	ContactName     *string `json:"contact_name"     validate:"omitempty,max=200"`
	ContactPhone    *string `json:"contact_phone"    validate:"omitempty,max=32"`
	ReviewText      *string `json:"review_text"      validate:"omitempty,max=10000"`
	DoctorIDs       []uint  `json:"doctor_ids"`
	ServiceIDs      []uint  `json:"service_ids"`
	AspectIDs       []uint  `json:"aspect_ids"`
	SourceID        *uint   `json:"source_id"`
	RewardID        *uint   `json:"reward_id"`
	PlatformIDs     []uint  `json:"platform_ids"`
}

type ComplaintBody struct {
	ContactName   *string `json:"contact_name"   validate:"omitempty,max=200"`
	ContactPhone  *string `json:"contact_phone"  validate:"omitempty,max=32"`
	ComplaintText *string `json:"complaint_text" validate:"omitempty,max=10000"`
	ReasonIDs     []uint  `json:"reason_ids"`
}

type DashboardResponse struct {
	Reviews    []Review    `json:"reviews"`
	Complaints []Complaint `json:"complaints"`
}

// PublicCatalogResponse is the patient-facing selection list: enabled
// entries only, in display order.
type PublicCatalogResponse struct {
	Doctors   []Doctor   `json:"doctors"`
	Services  []Service  `json:"services"`
	Aspects   []Aspect   `json:"aspects"`
	Sources   []Source   `json:"sources"`
	Rewards   []Reward   `json:"rewards"`
	Platforms []Platform `json:"platforms"`
}
