package models

import (
	"time"
)

// Document represents a managed content item and its descriptive metadata.
// Binary content is handled separately through the content-storage capability.
type Document struct {
	DocumentID    string            `json:"document_id"`
	FolderID      string            `json:"folder_id,omitempty"`
	Name          string            `json:"name"`
	MimeType      string            `json:"mime_type,omitempty"`
	SizeBytes     int64             `json:"size_bytes,omitempty"`
	Checksum      string            `json:"checksum,omitempty"`
	OwnerID       string            `json:"owner_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Created       time.Time         `json:"created"`
	Updated       time.Time         `json:"updated"`
	ActiveVersion string            `json:"active_version,omitempty"`
}

// DocumentVersion represents one immutable version of a document.
type DocumentVersion struct {
	VersionID  string    `json:"version_id"`
	DocumentID string    `json:"document_id"`
	Label      string    `json:"label,omitempty"`
	SizeBytes  int64     `json:"size_bytes,omitempty"`
	Checksum   string    `json:"checksum,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	Created    time.Time `json:"created"`
}

// Folder represents a node in the folder hierarchy.
type Folder struct {
	FolderID string    `json:"folder_id"`
	ParentID string    `json:"parent_id,omitempty"`
	Name     string    `json:"name"`
	Path     string    `json:"path,omitempty"`
	OwnerID  string    `json:"owner_id,omitempty"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// ACLEntry grants a single principal a set of actions on a resource.
type ACLEntry struct {
	PrincipalID string   `json:"principal_id"`
	Actions     []string `json:"actions"` // e.g. "read", "write", "delete", "share"
	Inherited   bool     `json:"inherited,omitempty"`
}

// ACL is the complete access-control list attached to a document or folder.
type ACL struct {
	ResourceID string     `json:"resource_id"`
	Entries    []ACLEntry `json:"entries"`
}

// AuditEvent records one action performed against a managed resource.
type AuditEvent struct {
	EventID     string            `json:"event_id"`
	ResourceID  string            `json:"resource_id"`
	PrincipalID string            `json:"principal_id,omitempty"`
	Action      string            `json:"action"`
	Outcome     string            `json:"outcome,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Recipient is one signer or viewer on an envelope.
type Recipient struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"` // "signer", "cc", "approver"
	RoutingOrder int    `json:"routing_order,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Envelope represents an eSignature request covering one or more documents.
type Envelope struct {
	EnvelopeID  string      `json:"envelope_id"`
	Subject     string      `json:"subject,omitempty"`
	Message     string      `json:"message,omitempty"`
	DocumentIDs []string    `json:"document_ids"`
	Recipients  []Recipient `json:"recipients"`
	Status      string      `json:"status,omitempty"` // "draft", "sent", "completed", "voided"
	Created     time.Time   `json:"created"`
	Completed   *time.Time  `json:"completed,omitempty"`
}

// SignatureInfo describes one verified signature on a document.
type SignatureInfo struct {
	SignerName   string    `json:"signer_name"`
	SignerEmail  string    `json:"signer_email,omitempty"`
	SignedAt     time.Time `json:"signed_at"`
	Valid        bool      `json:"valid"`
	CertIssuer   string    `json:"cert_issuer,omitempty"`
	FailureCause string    `json:"failure_cause,omitempty"`
}

// SearchQuery describes a capability-agnostic content search.
type SearchQuery struct {
	Text     string            `json:"text,omitempty"`
	FolderID string            `json:"folder_id,omitempty"`
	MimeType string            `json:"mime_type,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Limit    int               `json:"limit,omitempty"`
	Offset   int               `json:"offset,omitempty"`
}

// SearchHit is one result of a search, ranked by score.
type SearchHit struct {
	DocumentID string  `json:"document_id"`
	Name       string  `json:"name,omitempty"`
	Score      float64 `json:"score,omitempty"`
	Snippet    string  `json:"snippet,omitempty"`
}

// ClassificationResult is the outcome of classifying one document.
type ClassificationResult struct {
	DocumentID string  `json:"document_id"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ExtractedField is one structured field pulled out of a document.
type ExtractedField struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence,omitempty"`
	Page       int     `json:"page,omitempty"`
}

// ValidationIssue is one problem found while validating a document
// against a compliance or content profile.
type ValidationIssue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"` // "info", "warning", "error"
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}
