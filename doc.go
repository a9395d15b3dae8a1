/*
Package iiko-app-sheets publishes product catalogs, department hierarchies and transaction
reports from an iiko restaurant-management server to Google Sheets worksheets.

iiko-app-sheets can be used from the command line but is really intended to be run from a cron
job to keep the financial reporting spreadsheets for a set of restaurants in sync with the iiko
back-office. Runs are sequential and non-overlapping - do not schedule concurrent runs against
the same spreadsheet.

iiko-app-sheets supports the following commands:

  - sync-products, to replace a worksheet with the current product catalog
  - sync-departments, to replace a worksheet with the department/corporate hierarchy
  - load-report, to replace a worksheet with an OLAP transactions report for a date range
  - get-products, to download the product catalog to a TSV file
  - avg-price, to display the weighted average purchase price for a product over a date range
  - version, to display the application version
*/
package sheets
