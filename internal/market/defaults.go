package market

// Morpho Blue markets on Base tracked by the APY report.
const (
	CbBTCWETH       = "0x5dffffc7d75dc5abfa8dbe6fad9cbdadf6680cbe1428bafe661497520c84a94c"
	CbBTCUSDC       = "0x9103c3b4e834476c9a62ea009ba2c884ee42e94e6e314a26f04d312434191836"
	WETHUSDC        = "0x8793cf302b8ffd655ab97bd1c695dbd967807e8367a65cb2f4edaf1380ba1bda"
	USDCWETH        = "0x3b3769cfca57be2eaed03fcc5299c25691b77781a1e124e7a8d520eb9a7eabb5"
	AEROUSDC        = "0xdaa04f6819210b11fe4e3b65300c725c32e55755e3598671559b9ae3bac453d7"
	WsuperOETHbWETH = "0x144bf18d6bf4c59602548a825034f73bf1d20177fc5f975fc69d5a5eba929b45"
)

// Assets is the fixed row and column order of the relationship matrix.
var Assets = []string{"WETH", "USDC", "cbBTC", "AERO", "wsuperOETHb"}

// DefaultLabels returns a fresh copy of the built-in market labels.
func DefaultLabels() map[string]string {
	return map[string]string{
		CbBTCWETH:       "cbBTC/WETH",
		CbBTCUSDC:       "cbBTC/USDC",
		WETHUSDC:        "WETH/USDC",
		USDCWETH:        "USDC/WETH",
		AEROUSDC:        "AERO/USDC",
		WsuperOETHbWETH: "wsuperOETHb/WETH",
	}
}

// MergeLabels overlays extra labels on the defaults.
func MergeLabels(extra map[string]string) map[string]string {
	labels := DefaultLabels()
	for k, v := range extra {
		labels[k] = v
	}
	return labels
}
