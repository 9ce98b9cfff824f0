// Package catalog holds the static NSQF course catalog and the default
// labour-market snapshot used when the caller supplies none. Both are
// synthetic and passed through unchanged as prompt context.
package catalog

import (
	"encoding/json"

	"github.com/skillpath/mitra/internal/types"
)

// Course is one NSQF-levelled vocational course.
type Course struct {
	CourseID      string `json:"course_id"`
	Title         string `json:"title"`
	NsqfLevel     int    `json:"nsqf_level"`
	Provider      string `json:"provider"`
	DurationWeeks int    `json:"duration_weeks"`
	CostINR       int    `json:"cost_inr"`
	URL           string `json:"url"`
}

// Courses returns the NSQF course catalog.
func Courses() []Course {
	return []Course{
		{
			CourseID:      "NSQF001",
			Title:         "Full-Stack Web Development",
			NsqfLevel:     5,
			Provider:      "Skill India Digital",
			DurationWeeks: 24,
			CostINR:       50000,
			URL:           "https://www.skillindiadigital.gov.in/",
		},
		{
			CourseID:      "NSQF002",
			Title:         "Data Analytics Foundation",
			NsqfLevel:     4,
			Provider:      "NCVET",
			DurationWeeks: 16,
			CostINR:       35000,
			URL:           "https://ncvet.gov.in/",
		},
		{
			CourseID:      "NSQF003",
			Title:         "Cloud Computing Practitioner",
			NsqfLevel:     6,
			Provider:      "AWS Academy",
			DurationWeeks: 12,
			CostINR:       45000,
			URL:           "https://aws.amazon.com/training/awsacademy/",
		},
		{
			CourseID:      "NSQF004",
			Title:         "Digital Marketing Specialist",
			NsqfLevel:     5,
			Provider:      "Google Career Certificates",
			DurationWeeks: 20,
			CostINR:       25000,
			URL:           "https://grow.google/intl/en_in/certificates/",
		},
		{
			CourseID:      "NSQF005",
			Title:         "Advanced AI and Machine Learning",
			NsqfLevel:     7,
			Provider:      "IIT Madras",
			DurationWeeks: 36,
			CostINR:       120000,
			URL:           "https://www.iitm.ac.in/",
		},
		{
			CourseID:      "NSQF006",
			Title:         "Cybersecurity Analyst",
			NsqfLevel:     6,
			Provider:      "C-DAC",
			DurationWeeks: 24,
			CostINR:       60000,
			URL:           "https://www.cdac.in/",
		},
	}
}

// CoursesJSON returns the catalog serialized for prompt interpolation.
func CoursesJSON() string {
	data, err := json.Marshal(Courses())
	if err != nil {
		return "[]"
	}
	return string(data)
}

// FindCourse looks up a catalog course by id.
func FindCourse(courseID string) (Course, bool) {
	for _, c := range Courses() {
		if c.CourseID == courseID {
			return c, true
		}
	}
	return Course{}, false
}

// DefaultLabourSnapshot returns the synthetic labour-market context used
// when a generation request carries none.
func DefaultLabourSnapshot() types.LabourMarketSignals {
	return types.LabourMarketSignals{
		DemandIndex:  85,
		AvgSalaryINR: 950000,
		TopLocations: []string{"Bengaluru", "Pune", "Hyderabad", "NCR"},
		SampleJobs:   []string{"Frontend Developer", "Full Stack Engineer", "UI/UX Developer"},
	}
}
