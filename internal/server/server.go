package server

// Server groups the entity-specific HTTP servers behind one router.
type Server struct {
	EstimateServer
}

func NewServer(
	estimateServer EstimateServer,
) Server {
	return Server{
		EstimateServer: estimateServer,
	}
}
