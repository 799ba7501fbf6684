package errors

// Kind names the category of a catalog error for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsTransportError(err):
		return "transport"
	case IsDecodeError(err):
		return "decode"
	case IsRemoteError(err):
		return "remote"
	case IsEmptyCatalogError(err):
		return "empty_catalog"
	default:
		return "unknown"
	}
}
