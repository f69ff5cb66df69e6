// Package kubeconfig renders kubectl client configuration for GKE
// clusters. Authentication is delegated to the gke-gcloud-auth-plugin
// exec hook, so the rendered document never embeds credentials beyond the
// cluster CA certificate the caller supplies.
package kubeconfig

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	execAPIVersion  = "client.authentication.k8s.io/v1beta1"
	execCommand     = "gke-gcloud-auth-plugin"
	execInstallHint = "Install gke-gcloud-auth-plugin for use with kubectl by following\n" +
		"https://cloud.google.com/blog/products/containers-kubernetes/kubectl-auth-changes-in-gke"
)

// requiredArgs lists every argument that must be present, in the order
// they are reported when missing.
var requiredArgs = []string{"cluster_name", "cluster_endpoint", "cluster_master_auth"}

// Args are the generator inputs as they arrive from an untyped boundary
// (JSON body, query string). Fields are pointers so an absent key and an
// empty string stay distinct: only absence fails validation, an
// empty-but-present value is accepted as-is.
type Args struct {
	// ClusterName names the cluster and is reused as the context name,
	// the user name, and current-context.
	ClusterName *string `json:"cluster_name"`

	// ClusterEndpoint is the API server host or URL. A bare host gets
	// https:// prepended.
	ClusterEndpoint *string `json:"cluster_endpoint"`

	// ClusterMasterAuth is the cluster's base64-encoded CA certificate,
	// passed through opaquely.
	ClusterMasterAuth *string `json:"cluster_master_auth"`
}

// MissingArgsError reports every required argument absent from a request,
// so a caller can fix all omissions in one pass.
type MissingArgsError struct {
	Missing []string
}

func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("missing required arguments: %s. all of the following arguments are required: %s",
		strings.Join(e.Missing, ", "), strings.Join(requiredArgs, ", "))
}

// Validate checks that all required arguments are present. It returns a
// *MissingArgsError naming every absent field, or nil.
func (a Args) Validate() error {
	var missing []string
	for _, arg := range []struct {
		name  string
		value *string
	}{
		{"cluster_name", a.ClusterName},
		{"cluster_endpoint", a.ClusterEndpoint},
		{"cluster_master_auth", a.ClusterMasterAuth},
	} {
		if arg.value == nil {
			missing = append(missing, arg.name)
		}
	}

	if len(missing) > 0 {
		return &MissingArgsError{Missing: missing}
	}
	return nil
}

// Generate validates args and renders the kubeconfig YAML. It is pure:
// identical args yield byte-identical output, and no output is produced
// on validation failure.
func Generate(args Args) (string, error) {
	if err := args.Validate(); err != nil {
		return "", err
	}

	doc := Build(*args.ClusterName, *args.ClusterEndpoint, *args.ClusterMasterAuth)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal kubeconfig: %w", err)
	}
	return string(out), nil
}

// Build constructs the kubeconfig document for a cluster. It is the typed
// entry point for callers that already hold all three values; Generate
// goes through it after validating boundary input.
func Build(name, endpoint, caData string) Config {
	return Config{
		APIVersion:  "v1",
		Kind:        "Config",
		Preferences: Preferences{},
		Clusters: []Cluster{
			{
				Cluster: ClusterData{
					CertificateAuthorityData: caData,
					Server:                   normalizeEndpoint(endpoint),
				},
				Name: name,
			},
		},
		Contexts: []Context{
			{
				Context: ContextData{
					Cluster: name,
					User:    name,
				},
				Name: name,
			},
		},
		CurrentContext: name,
		Users: []User{
			{
				Name: name,
				User: UserData{
					Exec: ExecConfig{
						APIVersion:         execAPIVersion,
						Command:            execCommand,
						InstallHint:        execInstallHint,
						InteractiveMode:    "IfAvailable",
						ProvideClusterInfo: true,
					},
				},
			},
		},
	}
}

// normalizeEndpoint returns the API server URL, prepending https:// only
// when the endpoint does not already carry it.
func normalizeEndpoint(endpoint string) string {
	if strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "https://" + endpoint
}
