package kubeconfig

// Config is a kubectl client configuration document. The struct field
// order fixes the YAML key order, so the same inputs always serialize to
// the same bytes.
type Config struct {
	APIVersion     string      `yaml:"apiVersion"`
	Kind           string      `yaml:"kind"`
	Preferences    Preferences `yaml:"preferences"`
	Clusters       []Cluster   `yaml:"clusters"`
	Contexts       []Context   `yaml:"contexts"`
	CurrentContext string      `yaml:"current-context"`
	Users          []User      `yaml:"users"`
}

// Preferences is always rendered as an empty mapping.
type Preferences struct{}

type Cluster struct {
	Cluster ClusterData `yaml:"cluster"`
	Name    string      `yaml:"name"`
}

type ClusterData struct {
	CertificateAuthorityData string `yaml:"certificate-authority-data"`
	Server                   string `yaml:"server"`
}

type Context struct {
	Context ContextData `yaml:"context"`
	Name    string      `yaml:"name"`
}

type ContextData struct {
	Cluster string `yaml:"cluster"`
	User    string `yaml:"user"`
}

type User struct {
	Name string   `yaml:"name"`
	User UserData `yaml:"user"`
}

type UserData struct {
	Exec ExecConfig `yaml:"exec"`
}

// ExecConfig names the external credential plugin kubectl invokes to
// obtain a token. The field names and values are part of kubectl's
// exec-credential protocol and must match it verbatim.
type ExecConfig struct {
	APIVersion         string `yaml:"apiVersion"`
	Command            string `yaml:"command"`
	InstallHint        string `yaml:"installHint"`
	InteractiveMode    string `yaml:"interactiveMode"`
	ProvideClusterInfo bool   `yaml:"provideClusterInfo"`
}
