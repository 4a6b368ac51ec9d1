package adapter

import (
	"context"
	"time"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
	"github.com/fireflyframework/firefly-ecm/pkg/logger"
	"github.com/fireflyframework/firefly-ecm/pkg/models"
	"github.com/fireflyframework/firefly-ecm/pkg/ports"
)

// The types below are the synthesized stand-ins, one per capability contract.
// Every method is a thin shim over standIn.dispatch: the classifier decides
// the result, the method shapes it onto the declared return type. Behavior
// changes belong in the classifier table, not here.

// noopDocumentStore is the stand-in for the "crud" capability.
type noopDocumentStore struct{ standIn }

// NewNoOpDocumentStore creates a stand-in DocumentStore.
func NewNoOpDocumentStore(log *logger.Logger) ports.DocumentStore {
	return &noopDocumentStore{newStandIn(ecmcapabilities.CapCRUD, log)}
}

func (n *noopDocumentStore) AdapterName() string { return n.name() }

func (n *noopDocumentStore) CreateDocument(ctx context.Context, doc models.Document, content []byte) (*models.Document, error) {
	out := n.dispatch("CreateDocument")
	return nil, out.Err()
}

func (n *noopDocumentStore) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	out := n.dispatch("GetDocument")
	return nil, out.Err()
}

func (n *noopDocumentStore) UpdateDocument(ctx context.Context, doc models.Document) (*models.Document, error) {
	out := n.dispatch("UpdateDocument")
	return nil, out.Err()
}

func (n *noopDocumentStore) DeleteDocument(ctx context.Context, documentID string) error {
	out := n.dispatch("DeleteDocument")
	return out.Err()
}

func (n *noopDocumentStore) ListDocuments(ctx context.Context, folderID string, limit int) ([]models.Document, error) {
	out := n.dispatch("ListDocuments")
	return nil, out.Err()
}

func (n *noopDocumentStore) HasDocument(ctx context.Context, documentID string) (bool, error) {
	out := n.dispatch("HasDocument")
	return out.Bool(), out.Err()
}

// noopContentStorage is the stand-in for the "content-storage" capability.
type noopContentStorage struct{ standIn }

// NewNoOpContentStorage creates a stand-in ContentStorage.
func NewNoOpContentStorage(log *logger.Logger) ports.ContentStorage {
	return &noopContentStorage{newStandIn(ecmcapabilities.CapContentStorage, log)}
}

func (n *noopContentStorage) AdapterName() string { return n.name() }

func (n *noopContentStorage) StoreContent(ctx context.Context, documentID string, content []byte) (string, error) {
	out := n.dispatch("StoreContent")
	return "", out.Err()
}

func (n *noopContentStorage) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	out := n.dispatch("GetContent")
	return nil, out.Err()
}

func (n *noopContentStorage) DeleteContent(ctx context.Context, documentID string) error {
	out := n.dispatch("DeleteContent")
	return out.Err()
}

func (n *noopContentStorage) GetContentSize(ctx context.Context, documentID string) (int64, error) {
	out := n.dispatch("GetContentSize")
	return 0, out.Err()
}

// noopVersionManager is the stand-in for the "versioning" capability.
type noopVersionManager struct{ standIn }

// NewNoOpVersionManager creates a stand-in VersionManager.
func NewNoOpVersionManager(log *logger.Logger) ports.VersionManager {
	return &noopVersionManager{newStandIn(ecmcapabilities.CapVersioning, log)}
}

func (n *noopVersionManager) AdapterName() string { return n.name() }

func (n *noopVersionManager) CreateVersion(ctx context.Context, documentID, label string) (*models.DocumentVersion, error) {
	out := n.dispatch("CreateVersion")
	return nil, out.Err()
}

func (n *noopVersionManager) GetVersion(ctx context.Context, documentID, versionID string) (*models.DocumentVersion, error) {
	out := n.dispatch("GetVersion")
	return nil, out.Err()
}

func (n *noopVersionManager) ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error) {
	out := n.dispatch("ListVersions")
	return nil, out.Err()
}

func (n *noopVersionManager) DeleteVersion(ctx context.Context, documentID, versionID string) error {
	out := n.dispatch("DeleteVersion")
	return out.Err()
}

func (n *noopVersionManager) SetActiveVersion(ctx context.Context, documentID, versionID string) error {
	out := n.dispatch("SetActiveVersion")
	return out.Err()
}

// noopFolderHierarchy is the stand-in for the "folder-hierarchy" capability.
type noopFolderHierarchy struct{ standIn }

// NewNoOpFolderHierarchy creates a stand-in FolderHierarchy.
func NewNoOpFolderHierarchy(log *logger.Logger) ports.FolderHierarchy {
	return &noopFolderHierarchy{newStandIn(ecmcapabilities.CapFolderHierarchy, log)}
}

func (n *noopFolderHierarchy) AdapterName() string { return n.name() }

func (n *noopFolderHierarchy) CreateFolder(ctx context.Context, folder models.Folder) (*models.Folder, error) {
	out := n.dispatch("CreateFolder")
	return nil, out.Err()
}

func (n *noopFolderHierarchy) GetFolder(ctx context.Context, folderID string) (*models.Folder, error) {
	out := n.dispatch("GetFolder")
	return nil, out.Err()
}

func (n *noopFolderHierarchy) DeleteFolder(ctx context.Context, folderID string, recursive bool) error {
	out := n.dispatch("DeleteFolder")
	return out.Err()
}

func (n *noopFolderHierarchy) MoveFolder(ctx context.Context, folderID, newParentID string) error {
	out := n.dispatch("MoveFolder")
	return out.Err()
}

func (n *noopFolderHierarchy) ListChildren(ctx context.Context, folderID string) ([]models.Folder, error) {
	out := n.dispatch("ListChildren")
	return nil, out.Err()
}

func (n *noopFolderHierarchy) HasChildren(ctx context.Context, folderID string) (bool, error) {
	out := n.dispatch("HasChildren")
	return out.Bool(), out.Err()
}

// noopPermissionManager is the stand-in for the "permissions" capability.
type noopPermissionManager struct{ standIn }

// NewNoOpPermissionManager creates a stand-in PermissionManager.
func NewNoOpPermissionManager(log *logger.Logger) ports.PermissionManager {
	return &noopPermissionManager{newStandIn(ecmcapabilities.CapPermissions, log)}
}

func (n *noopPermissionManager) AdapterName() string { return n.name() }

func (n *noopPermissionManager) ApplyACL(ctx context.Context, acl models.ACL) error {
	out := n.dispatch("ApplyACL")
	return out.Err()
}

func (n *noopPermissionManager) RemoveACL(ctx context.Context, resourceID string) error {
	out := n.dispatch("RemoveACL")
	return out.Err()
}

func (n *noopPermissionManager) GetACL(ctx context.Context, resourceID string) (*models.ACL, error) {
	out := n.dispatch("GetACL")
	return nil, out.Err()
}

func (n *noopPermissionManager) CanRead(ctx context.Context, principalID, resourceID string) (bool, error) {
	out := n.dispatch("CanRead")
	return out.Bool(), out.Err()
}

func (n *noopPermissionManager) CanWrite(ctx context.Context, principalID, resourceID string) (bool, error) {
	out := n.dispatch("CanWrite")
	return out.Bool(), out.Err()
}

func (n *noopPermissionManager) CheckAccess(ctx context.Context, principalID, resourceID, action string) (bool, error) {
	out := n.dispatch("CheckAccess")
	return out.Bool(), out.Err()
}

// noopSecurityOperator is the stand-in for the "security" capability.
type noopSecurityOperator struct{ standIn }

// NewNoOpSecurityOperator creates a stand-in SecurityOperator.
func NewNoOpSecurityOperator(log *logger.Logger) ports.SecurityOperator {
	return &noopSecurityOperator{newStandIn(ecmcapabilities.CapSecurity, log)}
}

func (n *noopSecurityOperator) AdapterName() string { return n.name() }

func (n *noopSecurityOperator) EncryptContent(ctx context.Context, documentID, keyID string) error {
	out := n.dispatch("EncryptContent")
	return out.Err()
}

func (n *noopSecurityOperator) ApplyLegalHold(ctx context.Context, documentID, reason string) error {
	out := n.dispatch("ApplyLegalHold")
	return out.Err()
}

func (n *noopSecurityOperator) RemoveLegalHold(ctx context.Context, documentID string) error {
	out := n.dispatch("RemoveLegalHold")
	return out.Err()
}

func (n *noopSecurityOperator) IsEncrypted(ctx context.Context, documentID string) (bool, error) {
	out := n.dispatch("IsEncrypted")
	return out.Bool(), out.Err()
}

func (n *noopSecurityOperator) IsUnderLegalHold(ctx context.Context, documentID string) (bool, error) {
	out := n.dispatch("IsUnderLegalHold")
	return out.Bool(), out.Err()
}

// noopSearchOperator is the stand-in for the "search" capability.
type noopSearchOperator struct{ standIn }

// NewNoOpSearchOperator creates a stand-in SearchOperator.
func NewNoOpSearchOperator(log *logger.Logger) ports.SearchOperator {
	return &noopSearchOperator{newStandIn(ecmcapabilities.CapSearch, log)}
}

func (n *noopSearchOperator) AdapterName() string { return n.name() }

func (n *noopSearchOperator) Search(ctx context.Context, query models.SearchQuery) ([]models.SearchHit, error) {
	out := n.dispatch("Search")
	return nil, out.Err()
}

func (n *noopSearchOperator) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	out := n.dispatch("Suggest")
	return nil, out.Err()
}

func (n *noopSearchOperator) CountMatches(ctx context.Context, query models.SearchQuery) (int64, error) {
	out := n.dispatch("CountMatches")
	return 0, out.Err()
}

// noopAuditTrail is the stand-in for the "audit-trail" capability.
type noopAuditTrail struct{ standIn }

// NewNoOpAuditTrail creates a stand-in AuditTrail.
func NewNoOpAuditTrail(log *logger.Logger) ports.AuditTrail {
	return &noopAuditTrail{newStandIn(ecmcapabilities.CapAuditTrail, log)}
}

func (n *noopAuditTrail) AdapterName() string { return n.name() }

func (n *noopAuditTrail) CreateEntry(ctx context.Context, event models.AuditEvent) error {
	out := n.dispatch("CreateEntry")
	return out.Err()
}

func (n *noopAuditTrail) GetEntry(ctx context.Context, eventID string) (*models.AuditEvent, error) {
	out := n.dispatch("GetEntry")
	return nil, out.Err()
}

func (n *noopAuditTrail) ListEntries(ctx context.Context, resourceID string, limit int) ([]models.AuditEvent, error) {
	out := n.dispatch("ListEntries")
	return nil, out.Err()
}

func (n *noopAuditTrail) DeleteEntries(ctx context.Context, before time.Time) (int64, error) {
	out := n.dispatch("DeleteEntries")
	return 0, out.Err()
}

// noopEnvelopeManager is the stand-in for the "envelope-management" capability.
type noopEnvelopeManager struct{ standIn }

// NewNoOpEnvelopeManager creates a stand-in EnvelopeManager.
func NewNoOpEnvelopeManager(log *logger.Logger) ports.EnvelopeManager {
	return &noopEnvelopeManager{newStandIn(ecmcapabilities.CapEnvelopeManagement, log)}
}

func (n *noopEnvelopeManager) AdapterName() string { return n.name() }

func (n *noopEnvelopeManager) CreateEnvelope(ctx context.Context, env models.Envelope) (*models.Envelope, error) {
	out := n.dispatch("CreateEnvelope")
	return nil, out.Err()
}

func (n *noopEnvelopeManager) UpdateEnvelope(ctx context.Context, env models.Envelope) (*models.Envelope, error) {
	out := n.dispatch("UpdateEnvelope")
	return nil, out.Err()
}

func (n *noopEnvelopeManager) DeleteEnvelope(ctx context.Context, envelopeID string) error {
	out := n.dispatch("DeleteEnvelope")
	return out.Err()
}

func (n *noopEnvelopeManager) GetEnvelope(ctx context.Context, envelopeID string) (*models.Envelope, error) {
	out := n.dispatch("GetEnvelope")
	return nil, out.Err()
}

func (n *noopEnvelopeManager) ListEnvelopes(ctx context.Context, status string, limit int) ([]models.Envelope, error) {
	out := n.dispatch("ListEnvelopes")
	return nil, out.Err()
}

func (n *noopEnvelopeManager) IsComplete(ctx context.Context, envelopeID string) (bool, error) {
	out := n.dispatch("IsComplete")
	return out.Bool(), out.Err()
}

// noopSignatureValidator is the stand-in for the "signature-validation" capability.
type noopSignatureValidator struct{ standIn }

// NewNoOpSignatureValidator creates a stand-in SignatureValidator.
func NewNoOpSignatureValidator(log *logger.Logger) ports.SignatureValidator {
	return &noopSignatureValidator{newStandIn(ecmcapabilities.CapSignatureValidation, log)}
}

func (n *noopSignatureValidator) AdapterName() string { return n.name() }

func (n *noopSignatureValidator) ValidateSignatures(ctx context.Context, documentID string) ([]models.SignatureInfo, error) {
	out := n.dispatch("ValidateSignatures")
	return nil, out.Err()
}

func (n *noopSignatureValidator) VerifySignature(ctx context.Context, documentID, signerEmail string) (*models.SignatureInfo, error) {
	out := n.dispatch("VerifySignature")
	return nil, out.Err()
}

func (n *noopSignatureValidator) IsSigned(ctx context.Context, documentID string) (bool, error) {
	out := n.dispatch("IsSigned")
	return out.Bool(), out.Err()
}

// noopTextExtractor is the stand-in for the "text-extraction" capability.
type noopTextExtractor struct{ standIn }

// NewNoOpTextExtractor creates a stand-in TextExtractor.
func NewNoOpTextExtractor(log *logger.Logger) ports.TextExtractor {
	return &noopTextExtractor{newStandIn(ecmcapabilities.CapTextExtraction, log)}
}

func (n *noopTextExtractor) AdapterName() string { return n.name() }

func (n *noopTextExtractor) ExtractText(ctx context.Context, documentID string) (string, error) {
	out := n.dispatch("ExtractText")
	return "", out.Err()
}

func (n *noopTextExtractor) ExtractPages(ctx context.Context, documentID string) ([]string, error) {
	out := n.dispatch("ExtractPages")
	return nil, out.Err()
}

// noopDocumentClassifier is the stand-in for the "classification" capability.
type noopDocumentClassifier struct{ standIn }

// NewNoOpDocumentClassifier creates a stand-in DocumentClassifier.
func NewNoOpDocumentClassifier(log *logger.Logger) ports.DocumentClassifier {
	return &noopDocumentClassifier{newStandIn(ecmcapabilities.CapClassification, log)}
}

func (n *noopDocumentClassifier) AdapterName() string { return n.name() }

func (n *noopDocumentClassifier) ClassifyDocument(ctx context.Context, documentID string) (*models.ClassificationResult, error) {
	out := n.dispatch("ClassifyDocument")
	return nil, out.Err()
}

func (n *noopDocumentClassifier) ListLabels(ctx context.Context) ([]string, error) {
	out := n.dispatch("ListLabels")
	return nil, out.Err()
}

// noopStructuredExtractor is the stand-in for the "structured-extraction" capability.
type noopStructuredExtractor struct{ standIn }

// NewNoOpStructuredExtractor creates a stand-in StructuredExtractor.
func NewNoOpStructuredExtractor(log *logger.Logger) ports.StructuredExtractor {
	return &noopStructuredExtractor{newStandIn(ecmcapabilities.CapStructuredExtraction, log)}
}

func (n *noopStructuredExtractor) AdapterName() string { return n.name() }

func (n *noopStructuredExtractor) ExtractFields(ctx context.Context, documentID, schema string) ([]models.ExtractedField, error) {
	out := n.dispatch("ExtractFields")
	return nil, out.Err()
}

func (n *noopStructuredExtractor) ExtractKeyValues(ctx context.Context, documentID string) (map[string]string, error) {
	out := n.dispatch("ExtractKeyValues")
	return nil, out.Err()
}

// noopDocumentValidator is the stand-in for the "validation" capability.
type noopDocumentValidator struct{ standIn }

// NewNoOpDocumentValidator creates a stand-in DocumentValidator.
func NewNoOpDocumentValidator(log *logger.Logger) ports.DocumentValidator {
	return &noopDocumentValidator{newStandIn(ecmcapabilities.CapValidation, log)}
}

func (n *noopDocumentValidator) AdapterName() string { return n.name() }

func (n *noopDocumentValidator) ValidateDocument(ctx context.Context, documentID, profile string) ([]models.ValidationIssue, error) {
	out := n.dispatch("ValidateDocument")
	return nil, out.Err()
}

func (n *noopDocumentValidator) IsCompliant(ctx context.Context, documentID, profile string) (bool, error) {
	out := n.dispatch("IsCompliant")
	return out.Bool(), out.Err()
}
