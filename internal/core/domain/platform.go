package domain

// Platform describes the Apple SDK an action compiles against.
type Platform struct {
	// Name is the platform flavor (e.g. "iphoneos", "iphonesimulator-x86_64").
	Name string
	// SDKName is the SDK name (e.g. "iphoneos", "macosx").
	SDKName string
	// SDKRoot is the absolute path to the SDK root.
	SDKRoot string
	// MinOSVersion is the deployment target (e.g. "9.0").
	MinOSVersion string
}

// DeploymentTargetFlag returns the momc flag selecting the deployment target for the SDK.
func (p Platform) DeploymentTargetFlag() string {
	return "--" + p.SDKName + "-deployment-target"
}
