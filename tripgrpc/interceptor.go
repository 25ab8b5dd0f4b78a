// Package tripgrpc guards gRPC client calls with a trip breaker.
package tripgrpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/tripkit/trip"
)

// UnaryClientInterceptor returns a client interceptor that wraps every unary
// call in b. While the breaker is unavailable, calls fail with
// trip.ErrUnavailable without reaching the transport.
func UnaryClientInterceptor(b *trip.Breaker) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return b.Do(ctx, func(ctx context.Context) error {
			return invoker(ctx, method, req, reply, cc, opts...)
		})
	}
}

// StreamClientInterceptor returns a client interceptor that guards stream
// creation with b. Only the initial setup is protected; errors on an
// established stream are not observed by the breaker.
func StreamClientInterceptor(b *trip.Breaker) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return trip.Run(ctx, b, func(ctx context.Context) (grpc.ClientStream, error) {
			return streamer(ctx, desc, cc, method, opts...)
		})
	}
}
