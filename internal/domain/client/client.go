package client

import (
	"time"

	"github.com/google/uuid"
)

type ProjectType string

const (
	ProjectTypeWebDesign      ProjectType = "Web Design"
	ProjectTypeSEO            ProjectType = "SEO"
	ProjectTypeMarketing      ProjectType = "Marketing"
	ProjectTypeAppDevelopment ProjectType = "App Development"
)

// ProjectTypes is the closed set of accepted project types.
var ProjectTypes = []ProjectType{
	ProjectTypeWebDesign,
	ProjectTypeSEO,
	ProjectTypeMarketing,
	ProjectTypeAppDevelopment,
}

type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses is the closed set of accepted client statuses.
var Statuses = []Status{
	StatusNew,
	StatusInProgress,
	StatusCompleted,
}

func ValidProjectType(v string) bool {
	for _, pt := range ProjectTypes {
		if string(pt) == v {
			return true
		}
	}
	return false
}

func ValidStatus(v string) bool {
	for _, s := range Statuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

// Client is the persisted record. ID is the public identity used for
// update and delete lookups; the store's own _id stays internal.
// CreatedAt is an ISO-8601 string set once at creation and never mutated.
type Client struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone" json:"phone"`
	ProjectType ProjectType `bson:"projectType" json:"projectType"`
	Budget      float64     `bson:"budget" json:"budget"`
	Status      Status      `bson:"status" json:"status"`
	CreatedAt   string      `bson:"createdAt" json:"createdAt"`
}

// Input holds the validated, coerced fields of a submitted payload.
type Input struct {
	Name        string
	Email       string
	Phone       string
	ProjectType ProjectType
	Budget      float64
	Status      Status
}

// New stamps a fresh record from validated input: a unique id and a
// creation timestamp, both immutable afterwards.
func New(in Input) *Client {
	return &Client{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Status:      in.Status,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
