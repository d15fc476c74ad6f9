package academy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/tracing"
)

// Activity is a human readable record of a completed mutation.
type Activity struct {
	Message string
}

// Service coordinates registry operations with tracing, logging and
// activity notifications.
type Service struct {
	registry *academy.Registry
	tracer   trace.Tracer
	broker   *pubsub.Broker[Activity]
}

// Option configures a Service.
type Option func(*Service)

// WithTracer sets the tracer used for operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewService wraps registry. Without WithTracer spans are no-ops.
func NewService(registry *academy.Registry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		tracer:   tracing.Noop().Tracer(),
		broker:   pubsub.NewBroker[Activity](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe returns a channel of activity events that closes with ctx or Close.
func (s *Service) Subscribe(ctx context.Context) <-chan pubsub.Event[Activity] {
	return s.broker.Subscribe(ctx)
}

// Close stops activity delivery. The registry stays readable.
func (s *Service) Close() {
	s.broker.Close()
}

// NextRollNumber reports the roll number the next student will receive.
func (s *Service) NextRollNumber() academy.RollNumber {
	return s.registry.NextRollNumber()
}

func (s *Service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, tracing.SpanPrefixAcademy+op, trace.WithAttributes(attrs...))
}

func (s *Service) publish(kind pubsub.EventType, msg string) {
	s.broker.Publish(kind, Activity{Message: msg})
}

func rollAttr(r academy.RollNumber) attribute.KeyValue {
	return attribute.Int(tracing.AttrStudentRoll, int(r))
}

func courseAttr(c academy.CourseID) attribute.KeyValue {
	return attribute.Int(tracing.AttrCourseID, int(c))
}

func instructorAttr(id academy.InstructorID) attribute.KeyValue {
	return attribute.Int(tracing.AttrInstructorID, int(id))
}

func deptAttr(d academy.DepartmentID) attribute.KeyValue {
	return attribute.Int(tracing.AttrDepartmentID, int(d))
}
