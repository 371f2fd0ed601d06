// Package reportgen renders orders into printable documents: pick tickets
// for the deployment crew, customer-facing order summaries, and blank pickup
// checklists for check-in. Rendering is pure; archiving the result is the
// application layer's job.
package reportgen
