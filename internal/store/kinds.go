package store

import (
	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/codec"
	"github.com/roach88/reqtrace/internal/idgen"
	"github.com/roach88/reqtrace/internal/substrate"
)

// Per-kind constructors. Each pairs a kind descriptor with its codec; this
// file is the only place that wiring exists.

// Requirements creates the requirement store.
func Requirements(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.Requirement] {
	return New[*artifact.Requirement](sub, alloc, artifact.KindRequirement, codec.Requirement{})
}

// UseCases creates the use case store.
func UseCases(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.UseCase] {
	return New[*artifact.UseCase](sub, alloc, artifact.KindUseCase, codec.UseCase{})
}

// TestCases creates the test case store.
func TestCases(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.TestCase] {
	return New[*artifact.TestCase](sub, alloc, artifact.KindTestCase, codec.TestCase{})
}

// Risks creates the risk store.
func Risks(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.Risk] {
	return New[*artifact.Risk](sub, alloc, artifact.KindRisk, codec.Risk{})
}

// Information creates the information document store.
func Information(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.Information] {
	return New[*artifact.Information](sub, alloc, artifact.KindInformation, codec.Information{})
}

// Attributes creates the attribute definition store.
func Attributes(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.AttributeDefinition] {
	return New[*artifact.AttributeDefinition](sub, alloc, artifact.KindAttribute, codec.Attribute{})
}

// Workflows creates the workflow store.
func Workflows(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.Workflow] {
	return New[*artifact.Workflow](sub, alloc, artifact.KindWorkflow, codec.Workflow{})
}

// Links creates the raw link store. internal/links wraps it with the graph
// queries; most callers want that service instead.
func Links(sub substrate.Substrate, alloc *idgen.Allocator) *Store[*artifact.Link] {
	return New[*artifact.Link](sub, alloc, artifact.KindLink, codec.Link{})
}
