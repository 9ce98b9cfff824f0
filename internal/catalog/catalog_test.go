package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourses(t *testing.T) {
	courses := Courses()
	require.Len(t, courses, 6)

	seen := make(map[string]bool)
	for _, c := range courses {
		assert.NotEmpty(t, c.CourseID)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Provider)
		assert.GreaterOrEqual(t, c.NsqfLevel, 1)
		assert.LessOrEqual(t, c.NsqfLevel, 10)
		assert.False(t, seen[c.CourseID], "course ids must be unique")
		seen[c.CourseID] = true
	}
}

func TestCoursesJSON(t *testing.T) {
	var parsed []Course
	require.NoError(t, json.Unmarshal([]byte(CoursesJSON()), &parsed))
	assert.Equal(t, Courses(), parsed)
}

func TestFindCourse(t *testing.T) {
	course, ok := FindCourse("NSQF002")
	require.True(t, ok)
	assert.Equal(t, "Data Analytics Foundation", course.Title)
	assert.Equal(t, 4, course.NsqfLevel)

	_, ok = FindCourse("NSQF999")
	assert.False(t, ok)
}

func TestDefaultLabourSnapshot(t *testing.T) {
	snapshot := DefaultLabourSnapshot()
	assert.Equal(t, 85, snapshot.DemandIndex.Int())
	assert.Equal(t, 950000, snapshot.AvgSalaryINR.Int())
	assert.Contains(t, snapshot.TopLocations, "Bengaluru")
	assert.NotEmpty(t, snapshot.SampleJobs)
}
