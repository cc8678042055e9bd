// Package config loads the generator configuration file: the default
// library of generated classes, the plugin includes enabled for every
// spec, and the type lookups that override header and library naming.
//
//	version: "1"
//	library: RMModels
//	includes: [RMInitNewUnavailable]
//	typeLookups:
//	  - name: RMTag
//	    library: RMTagging
//	    file: RMTagTypes
//	    canForwardDeclare: true
package config
