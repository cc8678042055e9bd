// Package initnew marks -init and +new unavailable on generated classes so
// instances can only be built through their designated initializer.
package initnew

import (
	"objc-codegen/internal/algebraic"
	"objc-codegen/internal/common"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
	"objc-codegen/internal/plugin"
)

// Include is the include a spec enables to run this plugin.
const Include = "RMInitNewUnavailable"

const pluginName = "init-new-unavailable"

func unavailableMethod(selector string) objc.Method {
	return objc.Method{
		BelongsToProtocol:  common.Some("NSObject"),
		CompilerAttributes: []string{"NS_UNAVAILABLE"},
		Keywords:           []objc.Keyword{{Name: selector}},
		ReturnType: objc.ReturnType{
			Type: common.Some(objc.Type{Name: "instancetype", Reference: "instancetype"}),
		},
	}
}

func initUnavailableInstanceMethod() objc.Method {
	return unavailableMethod("init")
}

func newUnavailableClassMethod() objc.Method {
	return unavailableMethod("new")
}

type objectPlugin struct {
	plugin.Base[objectspec.Type]
}

// New returns the plugin for object specs. Objects without attributes keep
// -init and +new.
func New() plugin.Plugin[objectspec.Type] {
	return objectPlugin{}
}

func (objectPlugin) Name() string { return pluginName }

func (objectPlugin) RequiredIncludesToRun() []string { return []string{Include} }

func (objectPlugin) ClassMethods(t objectspec.Type) []objc.Method {
	if len(t.Attributes) == 0 {
		return nil
	}

	return []objc.Method{newUnavailableClassMethod()}
}

func (objectPlugin) InstanceMethods(t objectspec.Type) []objc.Method {
	if len(t.Attributes) == 0 {
		return nil
	}

	return []objc.Method{initUnavailableInstanceMethod()}
}

type algebraicPlugin struct {
	plugin.Base[algebraic.Type]
}

// NewAlgebraic returns the plugin for algebraic specs, which are always
// built through a subtype factory.
func NewAlgebraic() plugin.Plugin[algebraic.Type] {
	return algebraicPlugin{}
}

func (algebraicPlugin) Name() string { return pluginName }

func (algebraicPlugin) RequiredIncludesToRun() []string { return []string{Include} }

func (algebraicPlugin) ClassMethods(algebraic.Type) []objc.Method {
	return []objc.Method{newUnavailableClassMethod()}
}

func (algebraicPlugin) InstanceMethods(algebraic.Type) []objc.Method {
	return []objc.Method{initUnavailableInstanceMethod()}
}
