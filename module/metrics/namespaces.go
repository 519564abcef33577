package metrics

// Prometheus metric namespaces
const (
	namespaceWitness = "witness"
	namespaceStorage = "storage"
)

// Witness subsystems
const (
	subsystemShadowValidation = "shadow_validation"
	subsystemWorkerPool       = "worker_pool"
)

// Storage subsystems
const (
	subsystemCache = "cache"
)
