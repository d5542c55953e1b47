// Package dto contains Data Transfer Objects for HTTP request bodies.
//
// DTOs are separate from domain entities to:
//   - Control what data is accepted by the API
//   - Distinguish absent fields from zero values via pointer fields,
//     which is what makes partial updates possible
package dto
