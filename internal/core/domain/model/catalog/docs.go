// Package catalog provides the store catalog aggregate: products with
// stock levels and services with durations. The low-stock rule used by
// the analytics dashboard and the background stock scan lives here.
package catalog
