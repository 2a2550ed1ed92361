// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	status StatusService
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(status StatusService) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{status: status}
}

// Health reports healthy only while the index keeps up with the node.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	report, err := h.status.Status(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "status: %v", err)
	}
	if !report.Ready {
		if report.BlocksBehind == nil {
			return nil, status.Errorf(codes.Unavailable, "index not ready: chain %d, index %d", report.ChainBlock, report.IndexBlock)
		}
		return nil, status.Errorf(codes.Unavailable, "index %d blocks behind", *report.BlocksBehind)
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("%s index at %d, chain at %d", report.Network, report.IndexBlock, report.ChainBlock),
	}, nil
}
