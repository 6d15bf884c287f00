package client

// Backend identifies which of the platform's two APIs owns a resource
// collection.
type Backend int

const (
	// Gateway is the identity API (organizations, teams, users).
	Gateway Backend = iota
	// Controller is the automation API (projects, inventories, hosts, ...).
	Controller
)

func (b Backend) String() string {
	if b == Gateway {
		return "gateway"
	}
	return "controller"
}

// basePath returns the versioned API prefix for the backend.
func (b Backend) basePath() string {
	if b == Gateway {
		return "/api/gateway/v1/"
	}
	return "/api/controller/v2/"
}

// ResourceType enumerates every resource collection the client supports.
type ResourceType int

const (
	Organization ResourceType = iota
	Team
	User
	Project
	Inventory
	Host
	Credential
	CredentialType
	ExecutionEnvironment
	JobTemplate
)

// Column describes one list-output column for a resource type.
type Column struct {
	Header string
	Value  func(Record) string
}

// Descriptor is the static metadata that drives generic command behavior for
// one resource type. Descriptors are read-only after init and safe to share.
type Descriptor struct {
	Type     ResourceType
	Display  string // error and message text, e.g. "Organization"
	Backend  Backend
	Endpoint string // collection path under the backend's API prefix
	// NameField is the attribute used for name lookups and uniqueness
	// checks ("username" for users, "name" everywhere else).
	NameField string
	// ScopeField, when non-empty, names the foreign-key attribute within
	// which NameField is unique (hosts are scoped by inventory). Lookups
	// for scoped types filter on it.
	ScopeField string
	Columns    []Column
}

// endpointPath returns the full collection path, e.g. "/api/gateway/v1/organizations/".
func (d Descriptor) endpointPath() string {
	return d.Backend.basePath() + d.Endpoint
}

func idCol() Column {
	return Column{"ID", func(r Record) string { return r.Str("id") }}
}

func strCol(header, field string) Column {
	return Column{header, func(r Record) string { return r.Str(field) }}
}

func summaryCol(header, field string) Column {
	return Column{header, func(r Record) string { return r.SummaryName(field) }}
}

var descriptors = map[ResourceType]Descriptor{
	Organization: {
		Type:      Organization,
		Display:   "Organization",
		Backend:   Gateway,
		Endpoint:  "organizations/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			strCol("Description", "description"),
		},
	},
	Team: {
		Type:      Team,
		Display:   "Team",
		Backend:   Gateway,
		Endpoint:  "teams/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Organization", "organization"),
			strCol("Description", "description"),
		},
	},
	User: {
		Type:      User,
		Display:   "User",
		Backend:   Gateway,
		Endpoint:  "users/",
		NameField: "username",
		Columns: []Column{
			idCol(),
			strCol("Username", "username"),
			strCol("Email", "email"),
			strCol("First Name", "first_name"),
			strCol("Last Name", "last_name"),
			strCol("Superuser", "is_superuser"),
		},
	},
	Project: {
		Type:      Project,
		Display:   "Project",
		Backend:   Controller,
		Endpoint:  "projects/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Organization", "organization"),
			strCol("SCM Type", "scm_type"),
			strCol("Status", "status"),
		},
	},
	Inventory: {
		Type:      Inventory,
		Display:   "Inventory",
		Backend:   Controller,
		Endpoint:  "inventories/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Organization", "organization"),
			strCol("Total Hosts", "total_hosts"),
			strCol("Description", "description"),
		},
	},
	Host: {
		Type:       Host,
		Display:    "Host",
		Backend:    Controller,
		Endpoint:   "hosts/",
		NameField:  "name",
		ScopeField: "inventory",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Inventory", "inventory"),
			strCol("Enabled", "enabled"),
			strCol("Description", "description"),
		},
	},
	Credential: {
		Type:      Credential,
		Display:   "Credential",
		Backend:   Controller,
		Endpoint:  "credentials/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Credential Type", "credential_type"),
			summaryCol("Organization", "organization"),
		},
	},
	CredentialType: {
		Type:      CredentialType,
		Display:   "Credential Type",
		Backend:   Controller,
		Endpoint:  "credential_types/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			strCol("Kind", "kind"),
		},
	},
	ExecutionEnvironment: {
		Type:      ExecutionEnvironment,
		Display:   "Execution Environment",
		Backend:   Controller,
		Endpoint:  "execution_environments/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			strCol("Image", "image"),
			summaryCol("Organization", "organization"),
		},
	},
	JobTemplate: {
		Type:      JobTemplate,
		Display:   "Job Template",
		Backend:   Controller,
		Endpoint:  "job_templates/",
		NameField: "name",
		Columns: []Column{
			idCol(),
			strCol("Name", "name"),
			summaryCol("Project", "project"),
			summaryCol("Inventory", "inventory"),
			strCol("Playbook", "playbook"),
		},
	},
}

// DescriptorFor returns the descriptor for a resource type. The table is
// exhaustive over the ResourceType constants; asking for anything else is a
// programming error.
func DescriptorFor(t ResourceType) Descriptor {
	d, ok := descriptors[t]
	if !ok {
		panic("client: no descriptor registered for resource type")
	}
	return d
}
