package model

import "time"

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectPlanning    ProjectStatus = "Planning"
	ProjectDevelopment ProjectStatus = "In Development"
	ProjectCompleted   ProjectStatus = "Completed"
)

// ProjectStatuses lists all valid project statuses in lifecycle order.
var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectDevelopment, ProjectCompleted}

// Project is one delivery engagement for a client.
type Project struct {
	ID             string
	Client         string
	Name           string
	Status         ProjectStatus
	Progress       int // 0-100 percent
	Started        time.Time
	Delivery       time.Time
	Value          int64
	EstimatedHours int
	WorkedHours    int
	Owner          string
}
