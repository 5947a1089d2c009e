// ABOUTME: Data models for topology resource requirements and deployment plans
// ABOUTME: JSON-serializable structures shared by services, handlers, and CLI

package models

// Component is a chassis sub-unit of a multi-part network device,
// e.g. a control-processor module or a line card.
type Component struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ResourceSpec is an explicit CPU/memory requirement.
type ResourceSpec struct {
	CPUCores int `json:"cpu"`
	MemoryGB int `json:"memory"`
}

// NodeResourceRequirement holds the derived resource requirement for
// a single topology node. Estimated values include the fixed
// containerization overhead on top of the base requirement.
type NodeResourceRequirement struct {
	Name              string        `json:"name"`
	Kind              string        `json:"kind"`
	CPUCores          int           `json:"cpu_cores"`
	MemoryGB          int           `json:"memory_gb"`
	EstimatedCPUCores int           `json:"estimated_cpu_cores"`
	EstimatedMemoryGB int           `json:"estimated_memory_gb"`
	Components        []Component   `json:"components,omitempty"`
	CustomResources   *ResourceSpec `json:"custom_resources,omitempty"`
}

// ExtractionResult is the output of topology resource extraction.
type ExtractionResult struct {
	TopologyName  string                    `json:"topology_name"`
	Nodes         []NodeResourceRequirement `json:"nodes"`
	NodeCount     int                       `json:"node_count"`
	TotalCPUCores int                       `json:"total_cpu"`
	TotalMemoryGB int                       `json:"total_memory"`
}

// MachineTypeSpec is a catalog entry for a fixed GCP machine type.
type MachineTypeSpec struct {
	MachineType string  `json:"machine_type"`
	CPUCores    int     `json:"cpu"`
	MemoryGB    int     `json:"memory"`
	HourlyCost  float64 `json:"hourly"`
	MonthlyCost float64 `json:"monthly"`
}

// VMConfiguration is one line item of a deployment plan.
type VMConfiguration struct {
	MachineType string  `json:"machine_type"`
	CPUCores    int     `json:"cpu_cores"`
	MemoryGB    int     `json:"memory_gb"`
	Count       int     `json:"count"`
	HourlyCost  float64 `json:"hourly_cost"`
	MonthlyCost float64 `json:"monthly_cost"`
	IsCustom    bool    `json:"is_custom"`
}

// DeploymentPlan is the result of a deployment optimization run.
// SpotSavings is only set when the plan itself is on-demand and a spot
// equivalent could be priced.
type DeploymentPlan struct {
	TotalCPUCores     int               `json:"total_cpu_cores"`
	TotalMemoryGB     int               `json:"total_memory_gb"`
	VMConfigurations  []VMConfiguration `json:"vm_configurations"`
	TotalHourlyCost   float64           `json:"total_hourly_cost"`
	TotalMonthlyCost  float64           `json:"total_monthly_cost"`
	Region            string            `json:"region"`
	OptimizationNotes []string          `json:"optimization_notes"`
	SpotSavings       *float64          `json:"spot_savings,omitempty"`
}

// PricingInfo is the read-only pricing boundary response. When a machine
// type was requested, Pricing is set; otherwise the catalog listing fields
// are populated.
type PricingInfo struct {
	Region                string           `json:"region"`
	MachineType           string           `json:"machine_type,omitempty"`
	Pricing               *MachineTypeSpec `json:"pricing,omitempty"`
	AvailableMachineTypes []string         `json:"available_machine_types,omitempty"`
	SpotDiscount          float64          `json:"spot_discount,omitempty"`
}

// Comparison holds on-demand vs spot deployment plans for the same demand.
type Comparison struct {
	OnDemand           DeploymentPlan `json:"on_demand_standard"`
	Spot               DeploymentPlan `json:"spot_standard"`
	SpotSavings        float64        `json:"spot_savings"`
	SpotSavingsPercent float64        `json:"spot_savings_percentage"`
	Region             string         `json:"region"`
}

// Recommendation holds the evaluated deployment options and the one
// selected by the priority policy.
type Recommendation struct {
	Options          map[string]DeploymentPlan `json:"all_options"`
	RecommendedName  string                    `json:"recommended_option"`
	Recommended      DeploymentPlan            `json:"recommended_configuration"`
	BudgetConstraint *float64                  `json:"budget_constraint,omitempty"`
	Priority         string                    `json:"performance_priority"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
