// Package cdi defines the DDI-CDI vocabulary used by the generator: the
// closed set of class names emitted as @type values, the JSON-LD context
// declarations, and the fragment-identifier builders that keep node ids
// deterministic and internally consistent across one document.
package cdi
