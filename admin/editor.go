package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"folio/models"
	"folio/store"
)

// JSON editing endpoints, one per store operation. Every handler persists
// through the store; failure responses distinguish bad input, stale
// references and storage errors.

func (a *AdminModule) getData(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.Data())
}

func respondMutation(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// Singleton sections

func (a *AdminModule) updatePersonal(c *gin.Context) {
	var personal models.PersonalInfo
	if err := c.ShouldBindJSON(&personal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid personal data"})
		return
	}
	respondMutation(c, a.store.UpdatePersonal(personal), "Personal info updated")
}

func (a *AdminModule) updateSocial(c *gin.Context) {
	var social models.SocialLinks
	if err := c.ShouldBindJSON(&social); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid social data"})
		return
	}
	respondMutation(c, a.store.UpdateSocial(social), "Social links updated")
}

func (a *AdminModule) updateAbout(c *gin.Context) {
	var about models.AboutInfo
	if err := c.ShouldBindJSON(&about); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about data"})
		return
	}
	respondMutation(c, a.store.UpdateAbout(about), "About section updated")
}

func (a *AdminModule) updateSkills(c *gin.Context) {
	var skills models.SkillsData
	if err := c.ShouldBindJSON(&skills); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skills data"})
		return
	}
	respondMutation(c, a.store.UpdateSkills(skills), "Skills updated")
}

func (a *AdminModule) updateStatusBadge(c *gin.Context) {
	var badge models.StatusBadge
	if err := c.ShouldBindJSON(&badge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status badge data"})
		return
	}
	respondMutation(c, a.store.UpdateStatusBadge(badge), "Status badge updated")
}

func (a *AdminModule) updateSectionVisibility(c *gin.Context) {
	var visibility models.SectionVisibility
	if err := c.ShouldBindJSON(&visibility); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section visibility data"})
		return
	}
	respondMutation(c, a.store.UpdateSectionVisibility(visibility), "Section visibility updated")
}

// Id-bearing collections

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return 0, false
	}
	return index, true
}

func readPatch(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return nil, false
	}
	return body, true
}

func (a *AdminModule) addProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project data"})
		return
	}
	id, err := a.store.AddProject(project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project added", "id": id})
}

func (a *AdminModule) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	patch, ok := readPatch(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.UpdateProject(id, patch), "Project updated")
}

func (a *AdminModule) deleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.DeleteProject(id), "Project deleted")
}

func (a *AdminModule) addExperience(c *gin.Context) {
	var item models.ExperienceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience data"})
		return
	}
	id, err := a.store.AddExperience(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience added", "id": id})
}

func (a *AdminModule) updateExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	patch, ok := readPatch(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.UpdateExperience(id, patch), "Experience updated")
}

func (a *AdminModule) deleteExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.DeleteExperience(id), "Experience deleted")
}

func (a *AdminModule) addEducation(c *gin.Context) {
	var item models.EducationItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid education data"})
		return
	}
	id, err := a.store.AddEducation(item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education added", "id": id})
}

func (a *AdminModule) updateEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	patch, ok := readPatch(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.UpdateEducation(id, patch), "Education updated")
}

func (a *AdminModule) deleteEducation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.DeleteEducation(id), "Education deleted")
}

// Index-addressed collections

func (a *AdminModule) addCertification(c *gin.Context) {
	var cert models.Certification
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid certification data"})
		return
	}
	respondMutation(c, a.store.AddCertification(cert), "Certification added")
}

func (a *AdminModule) updateCertification(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var cert models.Certification
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid certification data"})
		return
	}
	respondMutation(c, a.store.UpdateCertification(index, cert), "Certification updated")
}

func (a *AdminModule) deleteCertification(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.DeleteCertification(index), "Certification deleted")
}

func (a *AdminModule) addAchievement(c *gin.Context) {
	var achievement models.Achievement
	if err := c.ShouldBindJSON(&achievement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement data"})
		return
	}
	respondMutation(c, a.store.AddAchievement(achievement), "Achievement added")
}

func (a *AdminModule) updateAchievement(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var achievement models.Achievement
	if err := c.ShouldBindJSON(&achievement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid achievement data"})
		return
	}
	respondMutation(c, a.store.UpdateAchievement(index, achievement), "Achievement updated")
}

func (a *AdminModule) deleteAchievement(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	respondMutation(c, a.store.DeleteAchievement(index), "Achievement deleted")
}

// Import / export / reset

func (a *AdminModule) exportData(c *gin.Context) {
	snapshot, err := a.store.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="portfolio-data.json"`)
	c.Data(http.StatusOK, "application/json", []byte(snapshot))
}

func (a *AdminModule) importData(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	if err := a.store.Import(string(body)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

func (a *AdminModule) resetData(c *gin.Context) {
	if err := a.store.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data reset to defaults"})
}
