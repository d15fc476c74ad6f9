package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrSessionID        = "session.id"
	AttrStudentRoll      = "student.roll_number"
	AttrInstructorID     = "instructor.id"
	AttrCourseID         = "course.id"
	AttrDepartmentID     = "department.id"
	AttrResultCount      = "result.count"
	AttrErrorMessage     = "error.message"
	SpanPrefixAcademy    = "academy."
	EventLinkRecorded    = "link.recorded"
	EventStudentCreated  = "student.created"
	EventInstructorHired = "instructor.created"
)

// Int is shorthand for an int attribute.
func Int(key string, v int) attribute.KeyValue {
	return attribute.Int(key, v)
}

// End finishes span, marking it failed when err is non-nil.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
