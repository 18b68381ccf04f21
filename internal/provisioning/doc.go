// Package provisioning defines the shared context, sequential phase
// pipeline, and observability surface for warehouse provisioning and
// teardown.
//
// Phases run strictly in order and share a Context carrying configuration,
// the progressively populated State, and the platform managers. Ordering
// matters: the IAM role must exist with its storage policy attached before
// the cluster creation request references its ARN, and teardown must
// detach the policy before the role can be deleted.
package provisioning
