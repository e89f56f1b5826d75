package hrapi

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// Wire formats of the HR API. Records are identified by "_id", older deployments use "id".

type attendanceRecord struct {
	MongoID           string  `json:"_id"`
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	Username          string  `json:"username"`
	DisplayName       string  `json:"displayName"`
	Date              string  `json:"date"`
	FirstHalfPresent  bool    `json:"firstHalfPresent"`
	SecondHalfPresent bool    `json:"secondHalfPresent"`
	CreatedAt         string  `json:"createdAt"`
	Note              *string `json:"note,omitempty"`
}

type attendancePayload struct {
	UserID            string  `json:"userId"`
	Username          string  `json:"username,omitempty"`
	DisplayName       string  `json:"displayName,omitempty"`
	Date              string  `json:"date"`
	FirstHalfPresent  bool    `json:"firstHalfPresent"`
	SecondHalfPresent bool    `json:"secondHalfPresent"`
	Note              *string `json:"note,omitempty"`
}

type attendancePatch struct {
	Date              *string `json:"date,omitempty"`
	FirstHalfPresent  *bool   `json:"firstHalfPresent,omitempty"`
	SecondHalfPresent *bool   `json:"secondHalfPresent,omitempty"`
	Note              *string `json:"note,omitempty"`
}

type leaveRecord struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Date        string `json:"date"`
	HalfDay     string `json:"halfDay"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"createdAt"`
}

type leavePayload struct {
	UserID      string `json:"userId"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Date        string `json:"date"`
	HalfDay     string `json:"halfDay"`
	Reason      string `json:"reason"`
}

type leavePatch struct {
	Date    *string `json:"date,omitempty"`
	HalfDay *string `json:"halfDay,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

type userRecord struct {
	MongoID     string  `json:"_id"`
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	Email       *string `json:"email,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func normalizeDate(raw string) string {
	if day, ok := utils.NormalizeDate(raw); ok {
		return day
	}
	return strings.TrimSpace(raw)
}

func parseTimestamp(raw string) time.Time {
	if t, ok := validator.IsValidDateTime(strings.TrimSpace(raw)); ok {
		return t.UTC()
	}
	return time.Time{}
}

func (r attendanceRecord) toEntity() attendance.Attendance {
	return attendance.Attendance{
		ID:                firstNonEmpty(r.MongoID, r.ID),
		UserID:            r.UserID,
		Username:          r.Username,
		DisplayName:       r.DisplayName,
		Date:              normalizeDate(r.Date),
		FirstHalfPresent:  r.FirstHalfPresent,
		SecondHalfPresent: r.SecondHalfPresent,
		CreatedAt:         parseTimestamp(r.CreatedAt),
		Note:              r.Note,
	}
}

func (r leaveRecord) toEntity() leave.Leave {
	return leave.Leave{
		ID:          firstNonEmpty(r.MongoID, r.ID),
		UserID:      r.UserID,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Date:        normalizeDate(r.Date),
		HalfDay:     strings.ToLower(strings.TrimSpace(r.HalfDay)),
		Reason:      r.Reason,
		CreatedAt:   parseTimestamp(r.CreatedAt),
	}
}

func (r userRecord) toEntity() employee.Employee {
	return employee.Employee{
		UserID:      firstNonEmpty(r.UserID, r.MongoID, r.ID),
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Email:       r.Email,
	}
}
