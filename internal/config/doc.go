// Package config defines the warehouse configuration, its YAML loader,
// and the interactive wizard that produces a starter config file.
//
// Configuration lives in a single YAML file (dwh.yaml by default) with two
// sections: "aws" for credentials and region, and "warehouse" for the IAM
// role and Redshift cluster parameters. AWS credentials may also be
// supplied through the standard AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
// environment variables, which fill in any fields left empty in the file.
package config
