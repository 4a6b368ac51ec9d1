package ecmcapabilities

import "strings"

// AdapterID is the canonical identifier for a content-management technology
// supported by Firefly ECM. Use these constants to look up adapter metadata.
type AdapterID string

const (
	// Object storage
	S3        AdapterID = "s3"
	GCS       AdapterID = "gcs"
	AzureBlob AdapterID = "azure_blob"
	MinIO     AdapterID = "minio"

	// Local / embedded
	FileSystem AdapterID = "filesystem"

	// ECM platforms
	Alfresco   AdapterID = "alfresco"
	SharePoint AdapterID = "sharepoint"
	Documentum AdapterID = "documentum"

	// eSignature providers
	DocuSign  AdapterID = "docusign"
	AdobeSign AdapterID = "adobe_sign"

	// Intelligent document processing
	Textract      AdapterID = "textract"
	AzureDocIntel AdapterID = "azure_docintel"
	GoogleDocAI   AdapterID = "google_docai"
)

// Capability names an abstract feature group that an adapter may provide.
// The set is closed; new tags are additive only.
type Capability string

const (
	CapCRUD                 Capability = "crud"
	CapContentStorage       Capability = "content-storage"
	CapVersioning           Capability = "versioning"
	CapFolderHierarchy      Capability = "folder-hierarchy"
	CapPermissions          Capability = "permissions"
	CapSecurity             Capability = "security"
	CapSearch               Capability = "search"
	CapAuditTrail           Capability = "audit-trail"
	CapEnvelopeManagement   Capability = "envelope-management"
	CapSignatureValidation  Capability = "signature-validation"
	CapTextExtraction       Capability = "text-extraction"
	CapClassification       Capability = "classification"
	CapStructuredExtraction Capability = "structured-extraction"
	CapValidation           Capability = "validation"
)

// Capabilities lists every known capability tag in a stable order.
func Capabilities() []Capability {
	return []Capability{
		CapCRUD,
		CapContentStorage,
		CapVersioning,
		CapFolderHierarchy,
		CapPermissions,
		CapSecurity,
		CapSearch,
		CapAuditTrail,
		CapEnvelopeManagement,
		CapSignatureValidation,
		CapTextExtraction,
		CapClassification,
		CapStructuredExtraction,
		CapValidation,
	}
}

// ParseCapability resolves a free-form capability name to a known tag.
// Returns false if unknown.
func ParseCapability(name string) (Capability, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Capabilities() {
		if string(c) == n {
			return c, true
		}
	}
	return "", false
}

// Profile is the ordinal service profile an adapter targets.
// Higher profiles are supersets of lower ones.
type Profile int

const (
	ProfileBasic Profile = iota
	ProfileStandard
	ProfileAdvanced
	ProfileEnterprise
)

// String returns the canonical lowercase profile name.
func (p Profile) String() string {
	switch p {
	case ProfileBasic:
		return "basic"
	case ProfileStandard:
		return "standard"
	case ProfileAdvanced:
		return "advanced"
	case ProfileEnterprise:
		return "enterprise"
	default:
		return "unknown"
	}
}

// AtLeast reports whether p satisfies the minimum profile min.
func (p Profile) AtLeast(min Profile) bool {
	return p >= min
}

// ParseProfile resolves a profile name. Returns false if unknown.
func ParseProfile(name string) (Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return ProfileBasic, true
	case "standard":
		return ProfileStandard, true
	case "advanced":
		return ProfileAdvanced, true
	case "enterprise":
		return ProfileEnterprise, true
	default:
		return 0, false
	}
}

// Info describes a well-known adapter technology so that tooling and the
// bootstrap layer can consume defaults uniformly before any provider is
// instantiated.
type Info struct {
	// Human-friendly vendor or product name, e.g., "Amazon S3".
	Name string `json:"name"`

	// Canonical ID used across the codebase (see AdapterID constants).
	ID AdapterID `json:"id"`

	// Vendor free text, e.g., "Amazon Web Services".
	Vendor string `json:"vendor,omitempty"`

	// Capability tags an implementation of this technology typically provides.
	Capabilities []Capability `json:"capabilities"`

	// Configuration keys a provider of this technology requires / accepts.
	RequiredConfigKeys []string `json:"requiredConfigKeys,omitempty"`
	OptionalConfigKeys []string `json:"optionalConfigKeys,omitempty"`

	// Minimum service profile the technology targets.
	MinimumProfile Profile `json:"minimumProfile"`

	// Common aliases (directory names, drivers, env labels) mapping to this ID.
	Aliases []string `json:"aliases,omitempty"`
}

// Known is a registry of adapter metadata keyed by the canonical adapter ID.
var Known = map[AdapterID]Info{
	S3: {
		Name:               "Amazon S3",
		ID:                 S3,
		Vendor:             "Amazon Web Services",
		Capabilities:       []Capability{CapContentStorage, CapVersioning, CapSecurity},
		RequiredConfigKeys: []string{"bucket", "region"},
		OptionalConfigKeys: []string{"endpoint", "prefix", "kms_key_id"},
		MinimumProfile:     ProfileStandard,
		Aliases:            []string{"aws-s3", "amazon-s3"},
	},
	GCS: {
		Name:               "Google Cloud Storage",
		ID:                 GCS,
		Vendor:             "Google Cloud",
		Capabilities:       []Capability{CapContentStorage, CapVersioning},
		RequiredConfigKeys: []string{"bucket", "project_id"},
		OptionalConfigKeys: []string{"prefix"},
		MinimumProfile:     ProfileStandard,
		Aliases:            []string{"google-cloud-storage"},
	},
	AzureBlob: {
		Name:               "Azure Blob Storage",
		ID:                 AzureBlob,
		Vendor:             "Microsoft Azure",
		Capabilities:       []Capability{CapContentStorage, CapVersioning},
		RequiredConfigKeys: []string{"container", "account"},
		OptionalConfigKeys: []string{"prefix"},
		MinimumProfile:     ProfileStandard,
		Aliases:            []string{"azure-blob", "azureblob"},
	},
	MinIO: {
		Name:               "MinIO",
		ID:                 MinIO,
		Vendor:             "MinIO, Inc.",
		Capabilities:       []Capability{CapContentStorage, CapVersioning},
		RequiredConfigKeys: []string{"bucket", "endpoint"},
		OptionalConfigKeys: []string{"prefix"},
		MinimumProfile:     ProfileBasic,
	},
	FileSystem: {
		Name:               "Local Filesystem",
		ID:                 FileSystem,
		Capabilities:       []Capability{CapCRUD, CapContentStorage, CapFolderHierarchy},
		RequiredConfigKeys: []string{"root_path"},
		OptionalConfigKeys: []string{"umask"},
		MinimumProfile:     ProfileBasic,
		Aliases:            []string{"fs", "local"},
	},
	Alfresco: {
		Name:   "Alfresco Content Services",
		ID:     Alfresco,
		Vendor: "Hyland",
		Capabilities: []Capability{
			CapCRUD, CapContentStorage, CapVersioning, CapFolderHierarchy,
			CapPermissions, CapSecurity, CapSearch, CapAuditTrail,
		},
		RequiredConfigKeys: []string{"base_url", "username", "password"},
		OptionalConfigKeys: []string{"site", "tls_verify"},
		MinimumProfile:     ProfileAdvanced,
	},
	SharePoint: {
		Name:   "Microsoft SharePoint",
		ID:     SharePoint,
		Vendor: "Microsoft",
		Capabilities: []Capability{
			CapCRUD, CapContentStorage, CapVersioning, CapFolderHierarchy,
			CapPermissions, CapSearch,
		},
		RequiredConfigKeys: []string{"site_url", "tenant_id", "client_id"},
		OptionalConfigKeys: []string{"drive_id"},
		MinimumProfile:     ProfileAdvanced,
		Aliases:            []string{"spo", "sharepoint-online"},
	},
	Documentum: {
		Name:   "OpenText Documentum",
		ID:     Documentum,
		Vendor: "OpenText",
		Capabilities: []Capability{
			CapCRUD, CapContentStorage, CapVersioning, CapFolderHierarchy,
			CapPermissions, CapSecurity, CapAuditTrail,
		},
		RequiredConfigKeys: []string{"docbase", "username", "password"},
		MinimumProfile:     ProfileEnterprise,
	},
	DocuSign: {
		Name:               "DocuSign",
		ID:                 DocuSign,
		Vendor:             "DocuSign, Inc.",
		Capabilities:       []Capability{CapEnvelopeManagement, CapSignatureValidation},
		RequiredConfigKeys: []string{"account_id", "integration_key"},
		OptionalConfigKeys: []string{"base_uri", "webhook_secret"},
		MinimumProfile:     ProfileStandard,
	},
	AdobeSign: {
		Name:               "Adobe Acrobat Sign",
		ID:                 AdobeSign,
		Vendor:             "Adobe",
		Capabilities:       []Capability{CapEnvelopeManagement, CapSignatureValidation},
		RequiredConfigKeys: []string{"client_id", "client_secret"},
		MinimumProfile:     ProfileStandard,
		Aliases:            []string{"adobesign", "echosign"},
	},
	Textract: {
		Name:               "Amazon Textract",
		ID:                 Textract,
		Vendor:             "Amazon Web Services",
		Capabilities:       []Capability{CapTextExtraction, CapStructuredExtraction},
		RequiredConfigKeys: []string{"region"},
		OptionalConfigKeys: []string{"sns_topic", "role_arn"},
		MinimumProfile:     ProfileAdvanced,
		Aliases:            []string{"aws-textract"},
	},
	AzureDocIntel: {
		Name:               "Azure AI Document Intelligence",
		ID:                 AzureDocIntel,
		Vendor:             "Microsoft Azure",
		Capabilities:       []Capability{CapTextExtraction, CapClassification, CapStructuredExtraction, CapValidation},
		RequiredConfigKeys: []string{"endpoint", "api_key"},
		MinimumProfile:     ProfileAdvanced,
		Aliases:            []string{"form-recognizer", "azure-form-recognizer"},
	},
	GoogleDocAI: {
		Name:               "Google Document AI",
		ID:                 GoogleDocAI,
		Vendor:             "Google Cloud",
		Capabilities:       []Capability{CapTextExtraction, CapClassification, CapStructuredExtraction},
		RequiredConfigKeys: []string{"project_id", "processor_id", "location"},
		MinimumProfile:     ProfileAdvanced,
		Aliases:            []string{"documentai", "docai"},
	},
}

// nameToID is a normalized lookup index from any known name/alias to the canonical AdapterID.
var nameToID map[string]AdapterID

func init() {
	nameToID = make(map[string]AdapterID, len(Known)*2)
	for id, info := range Known {
		// Canonical ID
		nameToID[strings.ToLower(string(id))] = id
		// Also record vendor/product name
		if info.Name != "" {
			nameToID[strings.ToLower(info.Name)] = id
		}
		// Aliases
		for _, a := range info.Aliases {
			if a == "" {
				continue
			}
			nameToID[strings.ToLower(a)] = id
		}
	}
}

// ParseID attempts to resolve an arbitrary adapter name (canonical id, alias,
// or product name) to a canonical AdapterID. Returns false if unknown.
func ParseID(name string) (AdapterID, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}
	id, ok := nameToID[n]
	return id, ok
}

// Get returns metadata for the given ID and a boolean indicating existence.
func Get(id AdapterID) (Info, bool) {
	info, ok := Known[id]
	return info, ok
}

// MustGet returns metadata for the given ID and panics if not found.
func MustGet(id AdapterID) Info {
	info, ok := Get(id)
	if !ok {
		panic("ecmcapabilities: unknown adapter id: " + string(id))
	}
	return info
}

// GetByName returns the Info by looking up using a free-form name (id or alias).
func GetByName(name string) (Info, bool) {
	if id, ok := ParseID(name); ok {
		return Get(id)
	}
	return Info{}, false
}

// IDs returns the list of all known adapter IDs.
func IDs() []AdapterID {
	out := make([]AdapterID, 0, len(Known))
	for id := range Known {
		out = append(out, id)
	}
	return out
}

// Provides reports whether the named technology typically provides a capability.
func Provides(id AdapterID, c Capability) bool {
	info, ok := Get(id)
	if !ok {
		return false
	}
	for _, have := range info.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// ProvidesString reports capability support using a free-form name (id or alias).
func ProvidesString(name string, c Capability) bool {
	if id, ok := ParseID(name); ok {
		return Provides(id, c)
	}
	return false
}
