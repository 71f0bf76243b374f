// Package domain holds the error vocabulary shared by the dashboard's
// sub-packages. Business types live next to the behaviour that owns them:
// daterange (timeline presets), query (list-view state), points (point
// transaction pages) and merchant (bank, metrics, rewards, customers).
package domain
