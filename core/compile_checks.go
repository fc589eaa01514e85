package core

var (
	_ Registry        = (*ConstructorRegistry)(nil)
	_ EndpointClient  = (EndpointClientFunc)(nil)
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}
	_ MetricsRecorder = NopMetricsRecorder{}
)
