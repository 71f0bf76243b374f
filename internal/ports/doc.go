// Package ports holds the interfaces the dashboard's layers meet at.
//
// MerchantClient is the outbound port to the merchant API, implemented by
// the acl adapter. DashboardService, ViewService and ListView are inbound
// ports implemented in app and consumed by the HTTP handlers and dashctl.
// HealthChecker and HealthRegistry back the readiness endpoint.
package ports
