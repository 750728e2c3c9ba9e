// Package integration combines circuit breaker and retry patterns for
// comprehensive fault tolerance around catalogue and preset file operations.
//
// This package provides ResilientExecutor which layers retry logic on top of
// circuit breaker protection, giving operations the benefits of both mechanisms:
// automatic retries for transient failures and fast-fail for persistent outages.
//
// # Execution Flow
//
// When executing an operation:
//
//  1. Retry is the outer layer; each attempt goes through the circuit breaker
//  2. If the circuit is open, that attempt fails with ErrCircuitBreakerOpen
//  3. If the circuit allows, the operation runs and the circuit breaker
//     records its success or failure for state management
//  4. Any failed attempt, including one rejected by an open circuit, is
//     retried with exponential backoff until MaxAttempts is reached
//
// # Creating Executors
//
// Create a custom executor with specific configuration:
//
//	cbConfig := resilience.CircuitBreakerConfig{
//	    Name:        "catalog-loader",
//	    MaxFailures: 5,
//	    Timeout:     30 * time.Second,
//	}
//	retryConfig := retry.RetryConfig{
//	    MaxAttempts:  3,
//	    InitialDelay: 100 * time.Millisecond,
//	}
//	executor := integration.NewResilientExecutor(cbConfig, retryConfig)
//
// # Executing Operations
//
// Wrap operations with combined protection:
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return loadCatalogFile()
//	})
//
// # Pre-configured Executors
//
// Global executors for common operation types:
//
//	// File system operations
//	err := integration.ExecuteFileSystemOperation(ctx, operation)
//
//	// Configuration loading
//	err := integration.ExecuteConfigOperation(ctx, operation)
//
// # Ad-hoc Execution
//
// For one-off operations with custom options:
//
//	err := integration.ExecuteResilient(ctx, operation,
//	    integration.ConfigureRetry(retryConfig),
//	    integration.ConfigureCircuitBreaker(cbConfig),
//	)
//
// # Disabling Mechanisms
//
// Build an executor with only one protection mechanism:
//
//	// Circuit breaker only, no retry
//	executor := integration.WithRetryDisabled(cbConfig)
//
//	// Retry only, no circuit breaker
//	executor := integration.WithCircuitBreakerDisabled(retryConfig)
//
// # Statistics
//
// Query the executor's statistics:
//
//	stats := executor.GetStats()
//	// Contains circuit breaker stats, keyed with a "circuit_breaker_" prefix;
//	// no retry metrics are included
package integration
