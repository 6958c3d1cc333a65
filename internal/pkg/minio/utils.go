package minio

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// bucketNameRegex validates bucket names according to AWS S3 rules
	bucketNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]{1,61}[a-z0-9]$`)

	// invalidBucketNamePrefixes are invalid bucket name prefixes
	invalidBucketNamePrefixes = []string{"xn--", "sthree-", "sthree-configurator"}

	// invalidBucketNameSuffixes are invalid bucket name suffixes
	invalidBucketNameSuffixes = []string{"-s3alias", "--ol-s3"}
)

// ValidateBucketName validates a bucket name according to AWS S3 naming rules
func ValidateBucketName(bucketName string) error {
	if bucketName == "" {
		return fmt.Errorf("bucket name cannot be empty")
	}

	// Length check
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return fmt.Errorf("bucket name must be between 3 and 63 characters long")
	}

	// Regex pattern check
	if !bucketNameRegex.MatchString(bucketName) {
		return fmt.Errorf("bucket name must start and end with a lowercase letter or number, and can only contain lowercase letters, numbers, and hyphens")
	}

	// Check for invalid prefixes
	for _, prefix := range invalidBucketNamePrefixes {
		if strings.HasPrefix(bucketName, prefix) {
			return fmt.Errorf("bucket name cannot start with '%s'", prefix)
		}
	}

	// Check for invalid suffixes
	for _, suffix := range invalidBucketNameSuffixes {
		if strings.HasSuffix(bucketName, suffix) {
			return fmt.Errorf("bucket name cannot end with '%s'", suffix)
		}
	}

	// Check for consecutive hyphens
	if strings.Contains(bucketName, "--") {
		return fmt.Errorf("bucket name cannot contain consecutive hyphens")
	}

	// Check for IP address format
	if isIPAddress(bucketName) {
		return fmt.Errorf("bucket name cannot be formatted as an IP address")
	}

	return nil
}

// ValidateObjectName validates an object name
func ValidateObjectName(objectName string) error {
	if objectName == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	// Length check (S3 allows up to 1024 characters)
	if len(objectName) > 1024 {
		return fmt.Errorf("object name cannot exceed 1024 characters")
	}

	// Check for invalid characters (null bytes)
	if strings.Contains(objectName, "\x00") {
		return fmt.Errorf("object name cannot contain null bytes")
	}

	return nil
}

// isIPAddress checks if a string is formatted as an IP address
func isIPAddress(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}

	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return false
		}

		// Check if all characters are digits
		for _, c := range part {
			if c < '0' || c > '9' {
				return false
			}
		}

		// Check range (0-255)
		var num int
		fmt.Sscanf(part, "%d", &num)
		if num < 0 || num > 255 {
			return false
		}
	}

	return true
}

// SanitizeObjectName sanitizes an object name by removing invalid characters
func SanitizeObjectName(objectName string) string {
	// Replace null bytes
	objectName = strings.ReplaceAll(objectName, "\x00", "")

	// Trim leading and trailing slashes
	objectName = strings.Trim(objectName, "/")

	// Replace multiple consecutive slashes with a single slash
	for strings.Contains(objectName, "//") {
		objectName = strings.ReplaceAll(objectName, "//", "/")
	}

	return objectName
}
