// Package ports defines the business-contract interfaces for enterprise
// content management. Each interface corresponds to exactly one capability
// tag; concrete providers implement whichever subset they support.
package ports

import (
	"context"
	"time"

	"github.com/fireflyframework/firefly-ecm/pkg/models"
)

// Port is the minimal contract every capability interface embeds.
// AdapterName answers the "what implementation am I" query and is safe to
// call on real adapters and synthesized stand-ins alike.
type Port interface {
	AdapterName() string
}

// DocumentStore handles document metadata lifecycle (capability "crud").
type DocumentStore interface {
	Port

	CreateDocument(ctx context.Context, doc models.Document, content []byte) (*models.Document, error)
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	UpdateDocument(ctx context.Context, doc models.Document) (*models.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
	ListDocuments(ctx context.Context, folderID string, limit int) ([]models.Document, error)
	HasDocument(ctx context.Context, documentID string) (bool, error)
}

// ContentStorage handles binary content (capability "content-storage").
type ContentStorage interface {
	Port

	// StoreContent writes content for a document and returns a storage reference.
	StoreContent(ctx context.Context, documentID string, content []byte) (string, error)
	GetContent(ctx context.Context, documentID string) ([]byte, error)
	DeleteContent(ctx context.Context, documentID string) error
	GetContentSize(ctx context.Context, documentID string) (int64, error)
}

// VersionManager handles document version history (capability "versioning").
type VersionManager interface {
	Port

	CreateVersion(ctx context.Context, documentID, label string) (*models.DocumentVersion, error)
	GetVersion(ctx context.Context, documentID, versionID string) (*models.DocumentVersion, error)
	ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	DeleteVersion(ctx context.Context, documentID, versionID string) error
	SetActiveVersion(ctx context.Context, documentID, versionID string) error
}

// FolderHierarchy handles folder trees (capability "folder-hierarchy").
type FolderHierarchy interface {
	Port

	CreateFolder(ctx context.Context, folder models.Folder) (*models.Folder, error)
	GetFolder(ctx context.Context, folderID string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, folderID string, recursive bool) error
	MoveFolder(ctx context.Context, folderID, newParentID string) error
	ListChildren(ctx context.Context, folderID string) ([]models.Folder, error)
	HasChildren(ctx context.Context, folderID string) (bool, error)
}

// PermissionManager handles access control (capability "permissions").
type PermissionManager interface {
	Port

	ApplyACL(ctx context.Context, acl models.ACL) error
	RemoveACL(ctx context.Context, resourceID string) error
	GetACL(ctx context.Context, resourceID string) (*models.ACL, error)
	CanRead(ctx context.Context, principalID, resourceID string) (bool, error)
	CanWrite(ctx context.Context, principalID, resourceID string) (bool, error)
	CheckAccess(ctx context.Context, principalID, resourceID, action string) (bool, error)
}

// SecurityOperator handles encryption and legal holds (capability "security").
type SecurityOperator interface {
	Port

	EncryptContent(ctx context.Context, documentID, keyID string) error
	ApplyLegalHold(ctx context.Context, documentID, reason string) error
	RemoveLegalHold(ctx context.Context, documentID string) error
	IsEncrypted(ctx context.Context, documentID string) (bool, error)
	IsUnderLegalHold(ctx context.Context, documentID string) (bool, error)
}

// SearchOperator handles content search (capability "search").
type SearchOperator interface {
	Port

	Search(ctx context.Context, query models.SearchQuery) ([]models.SearchHit, error)
	Suggest(ctx context.Context, prefix string, limit int) ([]string, error)
	CountMatches(ctx context.Context, query models.SearchQuery) (int64, error)
}

// AuditTrail handles audit records (capability "audit-trail").
type AuditTrail interface {
	Port

	CreateEntry(ctx context.Context, event models.AuditEvent) error
	GetEntry(ctx context.Context, eventID string) (*models.AuditEvent, error)
	ListEntries(ctx context.Context, resourceID string, limit int) ([]models.AuditEvent, error)
	// DeleteEntries removes entries older than the cutoff and reports how many.
	DeleteEntries(ctx context.Context, before time.Time) (int64, error)
}

// EnvelopeManager handles eSignature envelopes (capability "envelope-management").
type EnvelopeManager interface {
	Port

	CreateEnvelope(ctx context.Context, env models.Envelope) (*models.Envelope, error)
	UpdateEnvelope(ctx context.Context, env models.Envelope) (*models.Envelope, error)
	DeleteEnvelope(ctx context.Context, envelopeID string) error
	GetEnvelope(ctx context.Context, envelopeID string) (*models.Envelope, error)
	ListEnvelopes(ctx context.Context, status string, limit int) ([]models.Envelope, error)
	IsComplete(ctx context.Context, envelopeID string) (bool, error)
}

// SignatureValidator verifies signatures on stored documents
// (capability "signature-validation").
type SignatureValidator interface {
	Port

	ValidateSignatures(ctx context.Context, documentID string) ([]models.SignatureInfo, error)
	VerifySignature(ctx context.Context, documentID, signerEmail string) (*models.SignatureInfo, error)
	IsSigned(ctx context.Context, documentID string) (bool, error)
}

// TextExtractor pulls plain text out of documents (capability "text-extraction").
type TextExtractor interface {
	Port

	ExtractText(ctx context.Context, documentID string) (string, error)
	ExtractPages(ctx context.Context, documentID string) ([]string, error)
}

// DocumentClassifier assigns labels to documents (capability "classification").
type DocumentClassifier interface {
	Port

	ClassifyDocument(ctx context.Context, documentID string) (*models.ClassificationResult, error)
	ListLabels(ctx context.Context) ([]string, error)
}

// StructuredExtractor pulls structured fields out of documents
// (capability "structured-extraction").
type StructuredExtractor interface {
	Port

	ExtractFields(ctx context.Context, documentID, schema string) ([]models.ExtractedField, error)
	ExtractKeyValues(ctx context.Context, documentID string) (map[string]string, error)
}

// DocumentValidator checks documents against compliance profiles
// (capability "validation").
type DocumentValidator interface {
	Port

	ValidateDocument(ctx context.Context, documentID, profile string) ([]models.ValidationIssue, error)
	IsCompliant(ctx context.Context, documentID, profile string) (bool, error)
}
