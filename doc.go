// Package sgsolar provides the data model and bookkeeping logic for a small
// solar-installation business: client and project records, attached
// documents, ad-hoc financial transactions, and a file-based backup format.
// It is designed to be local-first and auditable, keeping the whole dataset
// on the operator's machine as plain JSON.
//
// The core functionalities include:
//   - Client Records: registering clients with their installation data,
//     address, coordinates (with UTM conversion) and project workflow status.
//   - Documents: attaching per-category files to a client, downscaling
//     images and persisting everything as self-describing data URIs.
//   - Financial Control: standalone income/expense entries plus aggregation
//     of contract values and project costs into totals and monthly series.
//   - Backup and Restore: exporting the dataset to a single snapshot file
//     and reconciling an imported snapshot against the current stores with
//     an explicit merge-or-replace decision.
//   - Remote Lookups: best-effort geocoding and CEP address autofill.
//
// This package serves as the foundational logic for the `sgs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package sgsolar
